package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cafelike.log")
	logger, err := New(path, true)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	logger.Debug("debug line")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	if !strings.Contains(string(data), "debug line") {
		t.Fatalf("expected debug entry in log: %q", data)
	}
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cafelike.log")
	logger, err := New(path, false)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("unexpected log content: %q", data)
	}
}

func TestForUI_EmptyPathIsNop(t *testing.T) {
	logger, err := ForUI("", true)
	if err != nil {
		t.Fatalf("for ui failed: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Fatalf("expected a no-op logger")
	}
}
