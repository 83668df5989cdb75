// Package execx executes external commands and captures their output.
package execx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result contains captured stdout/stderr for a finished command.
type Result struct {
	Stdout []byte
	Stderr []byte
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

// ExecError reports that a command could not be launched at all
// (binary missing, permission denied). It is distinct from a command
// that launched and exited nonzero.
type ExecError struct {
	Command string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to execute %q: %v", e.Command, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// CommandError reports a command that ran and exited nonzero. Stderr
// holds the captured error text verbatim.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%q exited with an error: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Runner executes commands with shared logging and output handling.
// The zero value is usable.
type Runner struct {
	Verbose bool
	Dir     string
	Env     []string
	Logger  io.Writer
}

func (r Runner) withDefaults() Runner {
	if r.Logger == nil {
		r.Logger = os.Stderr
	}
	return r
}

func (r Runner) log(display string) {
	if !r.Verbose {
		return
	}
	r = r.withDefaults()
	fmt.Fprintf(r.Logger, "Running: %s\n", display)
}

func (r Runner) command(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

// Run executes a command from explicit arguments and captures
// stdout/stderr. Arguments are never interpreted by a shell.
func (r Runner) Run(name string, args ...string) (Result, error) {
	display := name
	if len(args) > 0 {
		display += " " + strings.Join(args, " ")
	}
	return r.exec(r.command(name, args...), display)
}

// RunShell passes the whole command line to "sh -c" and returns its
// trimmed stdout. The line is interpreted by the shell as-is; callers
// own the risk of what they interpolate into it.
func (r Runner) RunShell(command string) (string, error) {
	result, err := r.exec(r.command("sh", "-c", command), command)
	if err != nil {
		return "", err
	}
	return result.StdoutString(true), nil
}

func (r Runner) exec(cmd *exec.Cmd, display string) (Result, error) {
	r.log(display)

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	result := Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, &CommandError{Command: display, Stderr: result.StderrString(false), Err: err}
		}
		return result, &ExecError{Command: display, Err: err}
	}
	return result, nil
}
