package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/mealweek/internal/constants"
)

// Logger is the process-wide logger. It stays nil until Init, and the
// package helpers are no-ops until then.
var Logger *log.Logger

var sink *lumberjack.Logger

type Config struct {
	Verbose bool
	Debug   bool
	LogDir  string
	// Console receives a copy of verbose and debug output. Defaults to stderr.
	Console io.Writer
}

// Level maps the -v and -d flags to a log level. Debug wins over verbose.
func (c Config) Level() log.Level {
	switch {
	case c.Debug:
		return log.DebugLevel
	case c.Verbose:
		return log.InfoLevel
	}
	return log.WarnLevel
}

// Init opens the rotating log file under cfg.LogDir and installs Logger.
// Calling it again closes the previous file.
func Init(cfg Config) error {
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return err
	}
	Close()

	sink = &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, constants.AppName+".log"),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}

	var writer io.Writer = sink
	if cfg.Debug || cfg.Verbose {
		console := cfg.Console
		if console == nil {
			console = os.Stderr
		}
		writer = io.MultiWriter(console, sink)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           cfg.Level(),
		Prefix:          constants.AppName,
	})
	return nil
}

// Path returns the current log file, or "" before Init.
func Path() string {
	if sink == nil {
		return ""
	}
	return sink.Filename
}

// Close flushes and closes the log file.
func Close() error {
	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	return err
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
