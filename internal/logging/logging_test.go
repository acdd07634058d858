package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	logger, f, err := Setup(dir, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("theme changed", slog.String("theme", "ocean_dark"))
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "duotone-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one log file, got %v (%v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "theme=ocean_dark") {
		t.Errorf("log missing record: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug record should be filtered at info level")
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing to see")
}
