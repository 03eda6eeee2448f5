package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestInit(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "config", "logs")

	err := Init(Config{LogDir: logDir})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}

	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}
	if Logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, want %v", Logger.GetLevel(), log.WarnLevel)
	}

	if want := filepath.Join(logDir, "mealweek.log"); Path() != want {
		t.Errorf("Path() = %q, want %q", Path(), want)
	}

	// Test that we can log without errors
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want log.Level
	}{
		{name: "verbose", cfg: Config{Verbose: true}, want: log.InfoLevel},
		{name: "debug", cfg: Config{Debug: true}, want: log.DebugLevel},
		{name: "debug wins over verbose", cfg: Config{Verbose: true, Debug: true}, want: log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.LogDir = t.TempDir()
			if err := Init(tt.cfg); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			if tt.cfg.Level() != tt.want {
				t.Errorf("Level() = %v, want %v", tt.cfg.Level(), tt.want)
			}
			if Logger.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", Logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}

func TestConsoleMirror(t *testing.T) {
	var console bytes.Buffer
	if err := Init(Config{Verbose: true, LogDir: t.TempDir(), Console: &console}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Close() })

	Info("Plan saved", "dishes", 7)
	Debug("hidden below info")

	out := console.String()
	if !strings.Contains(out, "Plan saved") {
		t.Errorf("info message not mirrored to console: %q", out)
	}
	if strings.Contains(out, "hidden below info") {
		t.Errorf("debug message leaked at info level: %q", out)
	}
}

func TestQuietConsole(t *testing.T) {
	var console bytes.Buffer
	dir := t.TempDir()
	if err := Init(Config{LogDir: dir, Console: &console}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Warn("Automatic backup failed")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if console.Len() != 0 {
		t.Errorf("console written without -v or -d: %q", console.String())
	}
	data, err := os.ReadFile(filepath.Join(dir, "mealweek.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "Automatic backup failed") {
		t.Errorf("warning missing from log file: %q", data)
	}
	if Path() != "" {
		t.Errorf("Path() = %q after Close, want empty", Path())
	}
}
