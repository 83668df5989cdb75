package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gitship-dev/gitship/internal/execx"
)

func TestParseFileList(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   []string
	}{
		{name: "empty output", output: "", want: nil},
		{name: "single file", output: "main.go\n", want: []string{"main.go"}},
		{
			name:   "multiple files",
			output: "cmd/root.go\ninternal/git/git.go\n",
			want:   []string{"cmd/root.go", "internal/git/git.go"},
		},
		{name: "blank lines skipped", output: "a.go\n\nb.go\n", want: []string{"a.go", "b.go"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseFileList(tc.output); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseFileList(%q) = %v, want %v", tc.output, got, tc.want)
			}
		})
	}
}

func TestWrapErrorPrefersStderr(t *testing.T) {
	cmdErr := &execx.CommandError{Command: "git push", Stderr: "remote rejected\n", Err: errors.New("exit status 1")}

	err := wrapError("failed to push", cmdErr)
	if !strings.Contains(err.Error(), "remote rejected") {
		t.Fatalf("wrapError() = %q, want stderr text included", err)
	}
	if !errors.Is(err, cmdErr) {
		t.Fatal("wrapError() must keep the original error in the chain")
	}
}

func TestWrapErrorWithoutStderr(t *testing.T) {
	plain := errors.New("boom")

	err := wrapError("failed to commit", plain)
	if got := err.Error(); got != "failed to commit: boom" {
		t.Fatalf("wrapError() = %q", got)
	}
}

// newTestRepo initialises a throwaway repository and returns a client
// scoped to it. Nothing here touches the caller's repository.
func newTestRepo(t *testing.T) (*Client, string) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	runner := execx.Runner{Dir: dir}
	for _, args := range [][]string{
		{"git", "init"},
		{"git", "config", "user.email", "test@example.com"},
		{"git", "config", "user.name", "Test User"},
	} {
		if _, err := runner.Run(args[0], args[1:]...); err != nil {
			t.Fatalf("setup %v failed: %v", args, err)
		}
	}

	return NewClient(runner), dir
}

func TestClientCommitRoundtrip(t *testing.T) {
	client, dir := newTestRepo(t)

	changed, err := client.HasChanges()
	if err != nil {
		t.Fatalf("HasChanges() error = %v", err)
	}
	if changed {
		t.Fatal("fresh repository must report no changes")
	}

	if err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed, err = client.HasChanges()
	if err != nil {
		t.Fatalf("HasChanges() error = %v", err)
	}
	if !changed {
		t.Fatal("new file must count as a pending change")
	}

	staged, err := client.HasStagedChanges()
	if err != nil {
		t.Fatalf("HasStagedChanges() error = %v", err)
	}
	if staged {
		t.Fatal("nothing staged yet")
	}

	if err := client.AddAll(); err != nil {
		t.Fatalf("AddAll() error = %v", err)
	}

	files, err := client.StagedFiles()
	if err != nil {
		t.Fatalf("StagedFiles() error = %v", err)
	}
	if !reflect.DeepEqual(files, []string{"note.txt"}) {
		t.Fatalf("StagedFiles() = %v, want [note.txt]", files)
	}

	if err := client.Commit("add note"); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	changed, err = client.HasChanges()
	if err != nil {
		t.Fatalf("HasChanges() error = %v", err)
	}
	if changed {
		t.Fatal("working tree must be clean after commit")
	}

	branch, err := client.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch() error = %v", err)
	}
	if branch == "" {
		t.Fatal("CurrentBranch() returned an empty name")
	}
}

func TestClientPushFailureKeepsCommit(t *testing.T) {
	client, dir := newTestRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := client.AddAll(); err != nil {
		t.Fatalf("AddAll() error = %v", err)
	}
	if err := client.Commit("first"); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	// No remote is configured, so the push must fail with git's own
	// error text and leave the commit in place.
	err := client.Push("origin", "master")
	if err == nil {
		t.Fatal("Push() expected error without a configured remote")
	}

	changed, statusErr := client.HasChanges()
	if statusErr != nil {
		t.Fatalf("HasChanges() error = %v", statusErr)
	}
	if changed {
		t.Fatal("failed push must not disturb the committed tree")
	}
}
