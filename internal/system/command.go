// Package system provides read-only access to the host's fact sources:
// command output and configuration file content.
package system

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CommandResult represents the result of a command execution
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Success  bool
	TimedOut bool
}

// Fallback timeouts when the config does not override them
const (
	TimeoutShort  = 5 * time.Second
	TimeoutMedium = 10 * time.Second
	TimeoutLong   = 30 * time.Second
)

// Runner is the capability collectors depend on instead of a concrete
// subprocess mechanism. A non-zero exit is reported in the result, not as an
// error; errors are reserved for the query not running at all.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, cmdParts ...string) (*CommandResult, error)
	ReadFile(path string) (string, error)
	FileExists(path string) bool
	CommandExists(cmd string) bool
}

// ExecRunner queries the live host via os/exec and the filesystem.
type ExecRunner struct{}

// Run executes a command with timeout
func (r *ExecRunner) Run(ctx context.Context, timeout time.Duration, cmdParts ...string) (*CommandResult, error) {
	if len(cmdParts) == 0 {
		return nil, fmt.Errorf("no command specified")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cmdParts[0], cmdParts[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Success:  err == nil,
		TimedOut: ctx.Err() == context.DeadlineExceeded,
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
	} else if err == nil {
		result.ExitCode = 0
	}

	return result, nil
}

// ReadFile returns the content of a configuration file as a string.
func (r *ExecRunner) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileExists reports whether a path exists on the host.
func (r *ExecRunner) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CommandExists checks if a command is available
func (r *ExecRunner) CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// IsServiceActive checks if a systemd service is active
func IsServiceActive(ctx context.Context, r Runner, timeout time.Duration, service string) bool {
	result, err := r.Run(ctx, timeout, "systemctl", "is-active", service)
	if err != nil || result == nil {
		return false
	}
	return result.Success && strings.TrimSpace(result.Stdout) == "active"
}
