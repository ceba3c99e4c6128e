package bootstrap

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// Command is a blocking process invocation
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // added to the current environment, later entries win
	// Output discarded, for commands only run for their exit status
	Quiet bool
}

// Runner runs commands to completion
type Runner interface {
	Run(ctx context.Context, command Command) error
}

// Time granted to a process to exit after being interrupted
const stopTimeout = 10 * time.Second

// ExecRunner runs commands as child processes sharing the output streams.
// Cancelling the context interrupts the process, then kills it after a
// grace period.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (runner ExecRunner) Run(ctx context.Context, command Command) error {
	process := exec.CommandContext(ctx, command.Name, command.Args...)
	process.Dir = command.Dir
	if len(command.Env) > 0 {
		process.Env = append(os.Environ(), command.Env...)
	}
	process.Stdout = runner.Stdout
	if process.Stdout == nil {
		process.Stdout = os.Stdout
	}
	process.Stderr = runner.Stderr
	if process.Stderr == nil {
		process.Stderr = os.Stderr
	}
	if command.Quiet {
		process.Stdout = io.Discard
		process.Stderr = io.Discard
	}
	process.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return process.Process.Kill()
		}
		return process.Process.Signal(os.Interrupt)
	}
	process.WaitDelay = stopTimeout
	return process.Run()
}
