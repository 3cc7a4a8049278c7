package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Log("tracker %s -> %v", "evaluate", true)

	if !strings.Contains(buf.String(), "tracker evaluate -> true") {
		t.Errorf("log output = %q, want message", buf.String())
	}
	if !Enabled() {
		t.Error("Enabled() = false, want true")
	}
}

func TestLog_NoopWithoutOutput(t *testing.T) {
	SetOutput(nil)
	Log("dropped")

	if Enabled() {
		t.Error("Enabled() = true, want false")
	}
}

func TestInit_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("first")
	Log("second")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("log lines = %d, want 2", got)
	}
}

func TestInit_EmptyPath(t *testing.T) {
	if err := Init(""); err == nil {
		t.Error("Init(\"\") expected error, got nil")
	}
}
