// Package shell runs the post-countdown command through the host shell.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/endzeit/endzeit/internal/ctxlog"
)

// Result describes how the command ended. Code is the shell's exit status,
// zero on success; Err is non-nil for both spawn failures and non-zero exits.
type Result struct {
	Code   int
	Output string
	Err    error
}

// Ok reports whether the command ran and exited zero.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Run executes command through the host shell (sh -c, or cmd /C on Windows),
// streaming output to the process's stdout/stderr while keeping a captured
// copy in the Result. It must only be called once the terminal session is
// closed: the child owns the terminal for its lifetime. The command runs at
// most once and is never retried.
func Run(ctx context.Context, command string) Result {
	logger := ctxlog.FromContext(ctx).With("command", command)
	logger.Debug("Spawning shell command.")

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}

	var buf bytes.Buffer
	cmd.Stdin = os.Stdin
	cmd.Stdout = io.MultiWriter(os.Stdout, &buf)
	cmd.Stderr = io.MultiWriter(os.Stderr, &buf)

	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = 1
		}
	}

	logger.Debug("Shell command finished.", "code", code)
	return Result{Code: code, Output: buf.String(), Err: err}
}
