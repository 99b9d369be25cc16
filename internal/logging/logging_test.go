package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDirWritesToFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := InitDir(dir)
	if err != nil {
		t.Fatalf("InitDir() failed: %v", err)
	}

	logger.Warn("column descriptor", "key", "club")

	data, err := os.ReadFile(filepath.Join(dir, "regatta.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "key=club") {
		t.Errorf("log file missing entry, got %q", string(data))
	}
}
