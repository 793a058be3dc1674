package action

import (
	"runtime"
	"strings"
	"testing"
)

func TestExecutor_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	executor := NewExecutor(5000)

	out, err := executor.Run("echo got $SHOUZHI_NUMBER $SHOUZHI_NAME", 3, "三")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if strings.TrimSpace(out) != "got 3 三" {
		t.Errorf("Run() output = %q, want %q", strings.TrimSpace(out), "got 3 三")
	}
}

func TestExecutor_RunTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	executor := NewExecutor(100)

	_, err := executor.Run("sleep 5", 0, "零")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("error = %v, want timeout error", err)
	}
}

func TestExecutor_RunFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on Windows")
	}

	executor := NewExecutor(5000)

	_, err := executor.Run("echo oops >&2; exit 1", 0, "零")
	if err == nil {
		t.Fatal("expected error for failing command")
	}
	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("error = %v, want stderr included", err)
	}
}
