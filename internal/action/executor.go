// Package action runs user-configured shell commands when a bound
// gesture number is confirmed.
package action

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"
)

// Executor runs action commands with timeout support.
type Executor struct {
	timeoutMs int
}

// NewExecutor creates a new Executor with the specified timeout in milliseconds.
func NewExecutor(timeoutMs int) *Executor {
	return &Executor{
		timeoutMs: timeoutMs,
	}
}

// Run executes a shell command bound to a gesture. The confirmed gesture
// number and name are exported to the command through SHOUZHI_NUMBER and
// SHOUZHI_NAME so scripts can act on them.
func (e *Executor) Run(command string, number int, name string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(e.timeoutMs)*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Env = append(os.Environ(),
		"SHOUZHI_NUMBER="+strconv.Itoa(number),
		"SHOUZHI_NAME="+name,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("action execution timeout after %dms", e.timeoutMs)
	}

	if err != nil {
		stderrStr := stderr.String()
		if stderrStr != "" {
			return "", fmt.Errorf("action execution failed: %w, stderr: %s", err, stderrStr)
		}
		return "", fmt.Errorf("action execution failed: %w", err)
	}

	return stdout.String(), nil
}
