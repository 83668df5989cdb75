package execx

import (
	"errors"
	"testing"
)

func TestRunShellTrimsOutput(t *testing.T) {
	var r Runner

	got, err := r.RunShell("printf 'hello world\\n'")
	if err != nil {
		t.Fatalf("RunShell() error = %v", err)
	}
	if got != "hello world" {
		t.Fatalf("RunShell() = %q, want %q", got, "hello world")
	}
}

func TestRunShellCommandError(t *testing.T) {
	var r Runner

	_, err := r.RunShell("echo broken >&2; exit 3")
	if err == nil {
		t.Fatal("RunShell() expected error for nonzero exit")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("RunShell() error = %T, want *CommandError", err)
	}

	// Stderr is captured verbatim, trailing newline included.
	if cmdErr.Stderr != "broken\n" {
		t.Fatalf("CommandError.Stderr = %q, want %q", cmdErr.Stderr, "broken\n")
	}
	if cmdErr.Error() != "broken\n" {
		t.Fatalf("CommandError.Error() = %q, want stderr text", cmdErr.Error())
	}
}

func TestRunExecError(t *testing.T) {
	var r Runner

	_, err := r.Run("gitship-test-no-such-binary")
	if err == nil {
		t.Fatal("Run() expected error for missing binary")
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("Run() error = %T, want *ExecError", err)
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		t.Fatal("a launch failure must not be a *CommandError")
	}
}

func TestRunCapturesStdout(t *testing.T) {
	var r Runner

	result, err := r.Run("echo", "staged")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := result.StdoutString(true); got != "staged" {
		t.Fatalf("StdoutString(true) = %q, want %q", got, "staged")
	}
	if got := result.StdoutString(false); got != "staged\n" {
		t.Fatalf("StdoutString(false) = %q, want %q", got, "staged\n")
	}
}

func TestResultStrings(t *testing.T) {
	cases := []struct {
		name   string
		result Result
		trim   bool
		stdout string
		stderr string
	}{
		{
			name:   "trimmed",
			result: Result{Stdout: []byte("  out \n"), Stderr: []byte(" err\n")},
			trim:   true,
			stdout: "out",
			stderr: "err",
		},
		{
			name:   "raw",
			result: Result{Stdout: []byte("out\n"), Stderr: []byte("err\n")},
			trim:   false,
			stdout: "out\n",
			stderr: "err\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.result.StdoutString(tc.trim); got != tc.stdout {
				t.Errorf("StdoutString(%v) = %q, want %q", tc.trim, got, tc.stdout)
			}
			if got := tc.result.StderrString(tc.trim); got != tc.stderr {
				t.Errorf("StderrString(%v) = %q, want %q", tc.trim, got, tc.stderr)
			}
		})
	}
}
