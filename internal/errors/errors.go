package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/mealweek/internal/logger"
)

// Format renders err for the terminal, followed by a hint when its kind is
// one the user can fix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := "Error: " + err.Error()
	if hint := Hint(err); hint != "" {
		msg += "\n" + hint
	}
	return msg
}

// Hint suggests the next step for err, or returns "".
func Hint(err error) string {
	var (
		cfgErr    *ConfigurationError
		dsErr     *DataSourceError
		exErr     *ExhaustionError
		lookupErr *LookupError
	)
	switch {
	case stderrors.As(err, &cfgErr):
		return "Run 'mealweek check' to see which quotas the catalog cannot meet."
	case stderrors.As(err, &dsErr):
		return fmt.Sprintf("Check that the %s document exists and is valid YAML.", dsErr.Source)
	case stderrors.As(err, &exErr):
		return "Lower the quotas or shorten --history-meals to leave more dishes eligible."
	case stderrors.As(err, &lookupErr):
		return "Add the missing entry to the seasonal calendar, or run without --seasonal."
	}
	return ""
}

// Report logs err, writes it to w and returns its exit code. A nil err
// writes nothing and returns 0.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(w, Format(err))
	return ExitCode(err)
}

// Fatal reports err on stderr and exits with the code matching its kind.
func Fatal(err error) {
	if err != nil {
		os.Exit(Report(os.Stderr, err))
	}
}
