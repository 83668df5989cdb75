// Package suggest obtains a commit message from an external
// AI-assisted suggestion tool.
package suggest

import (
	"errors"
	"fmt"
)

// DefaultCommand invokes gh copilot in shell-out mode: the tool
// answers with a command line rather than prose.
const DefaultCommand = `gh copilot suggest -t git "Suggest a git commit message based on staged changes" --shell-out`

var (
	ErrNoStagedChanges = errors.New("no staged changes found")
	ErrEmptySuggestion = errors.New("no suggestion provided by the suggestion tool")
)

// Origin records how a commit message was produced.
type Origin int

const (
	OriginSuggested Origin = iota
	OriginManual
)

// Message is a commit message ready to be passed to git commit.
type Message struct {
	Text   string
	Origin Origin
}

// StagingState is the piece of git state the generator needs.
type StagingState interface {
	HasStagedChanges() (bool, error)
}

// ShellRunner runs a shell command line and returns its trimmed output.
type ShellRunner interface {
	RunShell(command string) (string, error)
}

// Generator asks the external suggestion tool for a commit message.
type Generator struct {
	Git     StagingState
	Runner  ShellRunner
	Command string // suggestion tool invocation, DefaultCommand when empty
}

// Generate produces a commit message for the staged changes.
//
// The suggestion tool's output is itself a command line, not the
// message: running that command yields the actual message text. That
// two-step indirection is the tool's interface contract, so the
// returned line is deliberately re-executed here.
func (g *Generator) Generate() (Message, error) {
	staged, err := g.Git.HasStagedChanges()
	if err != nil {
		return Message{}, err
	}
	if !staged {
		return Message{}, ErrNoStagedChanges
	}

	command := g.Command
	if command == "" {
		command = DefaultCommand
	}

	suggestion, err := g.Runner.RunShell(command)
	if err != nil {
		return Message{}, fmt.Errorf("suggestion tool failed: %w", err)
	}
	if suggestion == "" {
		return Message{}, ErrEmptySuggestion
	}

	text, err := g.Runner.RunShell(suggestion)
	if err != nil {
		return Message{}, fmt.Errorf("suggested command failed: %w", err)
	}

	return Message{Text: text, Origin: OriginSuggested}, nil
}
