package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at normal level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("info line missing: %q", out)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	out, closeFn := Open(path)
	defer closeFn()

	log := New(LevelNormal, out)
	log.Info("first line")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "first line") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestOpenStderrPassthrough(t *testing.T) {
	for _, path := range []string{"", "stderr"} {
		out, closeFn := Open(path)
		closeFn()
		if out != os.Stderr {
			t.Fatalf("Open(%q) did not return stderr", path)
		}
	}
}
