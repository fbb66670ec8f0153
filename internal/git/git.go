package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/gorewood/desigit/internal/output"
)

// DefaultBinary is the executable looked up on PATH when none is configured.
const DefaultBinary = "git"

// ErrNotFound is returned when the git executable cannot be started because
// it does not exist.
var ErrNotFound = errors.New("git executable not found")

// Result is what one git invocation produced. A non-zero ExitCode is a normal
// result, not an error.
type Result struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Runner spawns git. The zero value runs "git" in the current directory.
type Runner struct {
	// Binary is the executable name or path. Empty means DefaultBinary.
	Binary string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Stdin is handed to the child. Nil means no input.
	Stdin io.Reader
}

// NewRunner returns a Runner for "git" in the current directory.
func NewRunner() *Runner {
	return &Runner{Binary: DefaultBinary}
}

func (r *Runner) binary() string {
	if r == nil || r.Binary == "" {
		return DefaultBinary
	}
	return r.Binary
}

// Exec runs git with args, waits for it to exit and captures both streams.
// Args are passed through untouched; nothing is quoted or split.
//
// The returned error is non-nil only when git could not be run at all.
// A missing executable yields an error wrapping ErrNotFound.
func (r *Runner) Exec(ctx context.Context, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, r.binary(), args...)
	if r != nil {
		cmd.Dir = r.Dir
		cmd.Stdin = r.Stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			// Killed by a signal; there is no code to pass through.
			result.ExitCode = output.ExitFailure
		}
		return result, nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return Result{}, fmt.Errorf("starting %s: %w", r.binary(), err)
}

// RunContext executes a git command and returns its trimmed stdout.
// Unlike Exec, a non-zero exit is an error: an *output.ExitError whose
// message carries git's stderr.
func (r *Runner) RunContext(ctx context.Context, args ...string) (string, error) {
	res, err := r.Exec(ctx, args)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", output.NewToolMissingError(err)
		}
		return "", output.NewInternalError("git command failed: "+err.Error(), err)
	}
	if res.ExitCode != 0 {
		msg := strings.TrimSpace(res.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("exit status %d", res.ExitCode)
		}
		return "", output.NewInternalError("git command failed: "+msg, nil)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Version returns the output of "git --version", e.g. "git version 2.47.1".
func (r *Runner) Version(ctx context.Context) (string, error) {
	return r.RunContext(ctx, "--version")
}
