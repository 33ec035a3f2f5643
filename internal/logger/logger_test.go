package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "DEBUG")

		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.Level() != "debug" {
			t.Errorf("expected log level %q, got %q", "debug", logger.Level())
		}
		if logger.colorOutput {
			t.Error("expected no color for a buffer")
		}
	})

	t.Run("invalid level defaults to info", func(t *testing.T) {
		logger := NewConsoleLogger(&bytes.Buffer{}, "loud")
		if logger.Level() != "info" {
			t.Errorf("expected info, got %q", logger.Level())
		}
	})

	t.Run("nil writer discards", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		logger.LogError("dropped") // must not panic
	})
}

func TestConsoleLogger_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogInfo("extracted 17 features")

	line := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] extracted 17 features\n$`)
	if !line.MatchString(buf.String()) {
		t.Errorf("unexpected format: %q", buf.String())
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		hidden   []string
	}{
		{level: "trace", expected: []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}},
		{level: "info", expected: []string{"INFO", "WARN", "ERROR"}, hidden: []string{"TRACE", "DEBUG"}},
		{level: "error", expected: []string{"ERROR"}, hidden: []string{"TRACE", "DEBUG", "INFO", "WARN"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.level)

			logger.LogTrace("t")
			logger.LogDebug("d")
			logger.LogInfo("i")
			logger.LogWarn("w")
			logger.LogError("e")

			out := buf.String()
			for _, want := range tt.expected {
				if !strings.Contains(out, "["+want+"]") {
					t.Errorf("expected %s in output:\n%s", want, out)
				}
			}
			for _, hidden := range tt.hidden {
				if strings.Contains(out, "["+hidden+"]") {
					t.Errorf("did not expect %s in output:\n%s", hidden, out)
				}
			}
		})
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, l := range ValidLevels {
		if !IsValidLevel(l) {
			t.Errorf("expected %q to be valid", l)
		}
	}
	if IsValidLevel("verbose") {
		t.Error("expected verbose to be invalid")
	}
}

func TestFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(dir, "serve", "warn")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	fl.LogInfo("hidden info")
	fl.LogWarn("visible warning")
	if err := fl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	fl.LogError("after close") // must not panic

	data, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "=== clickprint serve log ===") {
		t.Errorf("missing header:\n%s", content)
	}
	if !strings.Contains(content, "[WARN] visible warning") {
		t.Errorf("missing warning:\n%s", content)
	}
	if strings.Contains(content, "hidden info") {
		t.Errorf("info should be filtered:\n%s", content)
	}

	target, err := os.Readlink(filepath.Join(dir, "latest.log"))
	if err != nil {
		t.Fatalf("latest.log symlink missing: %v", err)
	}
	if target != filepath.Base(fl.Path()) {
		t.Errorf("latest.log points to %q, want %q", target, filepath.Base(fl.Path()))
	}
}

func TestMulti(t *testing.T) {
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	m := Multi{NewConsoleLogger(a, "info"), NewConsoleLogger(b, "error")}

	m.LogInfo("hello")
	m.LogError("boom")

	if !strings.Contains(a.String(), "hello") || !strings.Contains(a.String(), "boom") {
		t.Errorf("first logger missing output: %q", a.String())
	}
	if strings.Contains(b.String(), "hello") || !strings.Contains(b.String(), "boom") {
		t.Errorf("second logger filtered incorrectly: %q", b.String())
	}
}
