// Package git wraps the git operations the commit workflow needs.
// It shells out to the installed git binary; there is no plumbing here.
package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gitship-dev/gitship/internal/execx"
)

// Client runs git commands through an execx.Runner.
type Client struct {
	runner execx.Runner
}

func NewClient(runner execx.Runner) *Client {
	return &Client{runner: runner}
}

// HasChanges reports whether the working tree has any pending
// changes, staged or not.
func (c *Client) HasChanges() (bool, error) {
	result, err := c.runner.Run("git", "status", "--porcelain")
	if err != nil {
		return false, wrapError("failed to check git status", err)
	}
	return result.StdoutString(true) != "", nil
}

// AddAll stages every change in the working tree.
func (c *Client) AddAll() error {
	if _, err := c.runner.Run("git", "add", "."); err != nil {
		return wrapError("failed to stage changes", err)
	}
	return nil
}

// StagedFiles lists the files currently staged for commit.
func (c *Client) StagedFiles() ([]string, error) {
	result, err := c.runner.Run("git", "diff", "--cached", "--name-only")
	if err != nil {
		return nil, wrapError("failed to list staged files", err)
	}
	return parseFileList(result.StdoutString(false)), nil
}

// HasStagedChanges reports whether anything is staged for commit.
func (c *Client) HasStagedChanges() (bool, error) {
	files, err := c.StagedFiles()
	if err != nil {
		return false, err
	}
	return len(files) > 0, nil
}

// Commit records the staged changes. The message is passed as a
// single argument, never through a shell.
func (c *Client) Commit(message string) error {
	if _, err := c.runner.Run("git", "commit", "-m", message); err != nil {
		return wrapError("failed to commit changes", err)
	}
	return nil
}

// Push publishes the current branch to the given remote and branch.
func (c *Client) Push(remote, branch string) error {
	if _, err := c.runner.Run("git", "push", remote, branch); err != nil {
		return wrapError(fmt.Sprintf("failed to push to %s/%s", remote, branch), err)
	}
	return nil
}

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	result, err := c.runner.Run("git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", wrapError("failed to resolve current branch", err)
	}
	return result.StdoutString(true), nil
}

func parseFileList(output string) []string {
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}

// wrapError prefers the git stderr text when present.
func wrapError(action string, err error) error {
	var cmdErr *execx.CommandError
	if errors.As(err, &cmdErr) {
		if msg := strings.TrimSpace(cmdErr.Stderr); msg != "" {
			return fmt.Errorf("%s: %s: %w", action, msg, err)
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}
