package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	ExitFailure = 1
	// ExitNoInput is used for unusable configuration or input, as the
	// original tool exited with EX_NOINPUT.
	ExitNoInput = 66
)

// ConfigurationError reports quotas that cannot be satisfied by the catalog.
// It is fatal: generation must not start.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// DataSourceError reports an unreadable or malformed catalog, seasonal or
// history document.
type DataSourceError struct {
	Source string
	Path   string
	Err    error
}

func (e *DataSourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s data source: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s data source %s: %v", e.Source, e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// ExhaustionError reports a category whose eligible pool ran dry before its
// quota was met.
type ExhaustionError struct {
	Category string
	Quota    int
	Reached  int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("no eligible %s dish left: %d of %d selected", e.Category, e.Reached, e.Quota)
}

// LookupError reports a required entry missing from a lookup table, such as
// the current month in the seasonal calendar.
type LookupError struct {
	What string
	Key  string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found", e.What, e.Key)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	var cfgErr *ConfigurationError
	var dsErr *DataSourceError
	if stderrors.As(err, &cfgErr) || stderrors.As(err, &dsErr) {
		return ExitNoInput
	}
	return ExitFailure
}
