// Package workflow drives the stage, suggest, confirm, commit, push
// sequence behind the interactive menu.
package workflow

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gitship-dev/gitship/internal/suggest"
	"github.com/gitship-dev/gitship/internal/ui"
)

// Step identifies where a workflow run currently is. Exactly one step
// is active at a time; StepDone and StepAborted are terminal.
type Step int

const (
	StepIdle Step = iota
	StepCheckingStatus
	StepStaging
	StepGeneratingMessage
	StepAwaitingConfirmation
	StepCommitting
	StepPushing
	StepDone
	StepAborted
)

var stepNames = map[Step]string{
	StepIdle:                 "idle",
	StepCheckingStatus:       "checking-status",
	StepStaging:              "staging",
	StepGeneratingMessage:    "generating-message",
	StepAwaitingConfirmation: "awaiting-confirmation",
	StepCommitting:           "committing",
	StepPushing:              "pushing",
	StepDone:                 "done",
	StepAborted:              "aborted",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Outcome reports where a run ended. Step is StepDone or StepAborted;
// FailedAt names the step that aborted the run.
type Outcome struct {
	Step     Step
	FailedAt Step
	Err      error
}

var (
	ErrNoChanges     = errors.New("no changes to commit")
	ErrUserCancelled = errors.New("commit cancelled by user")
)

// GitClient abstracts the git operations the workflow issues.
type GitClient interface {
	HasChanges() (bool, error)
	AddAll() error
	Commit(message string) error
	Push(remote, branch string) error
}

// Suggester produces a proposed commit message.
type Suggester interface {
	Generate() (suggest.Message, error)
}

// Options configures a Flow. Zero fields get defaults in NewFlow.
type Options struct {
	Remote    string
	Branch    string
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Flow runs the commit-and-push workflow against injected
// collaborators. All state is local to a single run.
type Flow struct {
	git     GitClient
	suggest Suggester
	surface Surface
	opts    Options
}

func NewFlow(git GitClient, suggester Suggester, surface Surface, opts Options) *Flow {
	if opts.Remote == "" {
		opts.Remote = "origin"
	}
	if opts.Branch == "" {
		opts.Branch = "master"
	}
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	return &Flow{git: git, suggest: suggester, surface: surface, opts: opts}
}

// Menu entries offered between runs.
const (
	menuGeneratePush = "Generate Commit and Push"
	menuExit         = "Exit"
)

// RunMenu loops the top-level menu until the user exits. Every
// failure aborts only the current run and control returns here.
func (f *Flow) RunMenu() error {
	for {
		choice, err := f.surface.ChooseOne("What would you like to do?",
			[]string{menuGeneratePush, menuExit})
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			fmt.Fprintln(f.opts.ErrWriter, "Goodbye!")
			return nil
		default:
			f.report(f.Run())
		}
	}
}

// Run executes one commit-and-push attempt.
func (f *Flow) Run() Outcome {
	changed, err := f.git.HasChanges()
	if err != nil {
		return abort(StepCheckingStatus, fmt.Errorf("git status error: %w", err))
	}
	if !changed {
		return abort(StepCheckingStatus, ErrNoChanges)
	}

	if err := f.git.AddAll(); err != nil {
		return abort(StepStaging, err)
	}
	fmt.Fprintln(f.opts.ErrWriter, "Changes staged.")

	message, err := f.generate()
	if err != nil {
		return abort(StepGeneratingMessage, fmt.Errorf("failed to generate commit message: %w", err))
	}
	fmt.Fprintf(f.opts.OutWriter, "Suggested commit message: %q\n", message.Text)

	message, err = f.confirm(message)
	if err != nil {
		return abort(StepAwaitingConfirmation, err)
	}

	if err := f.git.Commit(message.Text); err != nil {
		return abort(StepCommitting, err)
	}
	fmt.Fprintln(f.opts.ErrWriter, "Changes committed.")

	if err := f.git.Push(f.opts.Remote, f.opts.Branch); err != nil {
		// The commit stays; a failed push is never rolled back.
		return abort(StepPushing, err)
	}
	fmt.Fprintf(f.opts.ErrWriter, "Pushed to %s/%s successfully!\n", f.opts.Remote, f.opts.Branch)

	return Outcome{Step: StepDone}
}

func (f *Flow) generate() (suggest.Message, error) {
	sp := ui.NewSpinner("Generating commit message...")
	sp.Start()
	message, err := f.suggest.Generate()
	sp.Stop()
	return message, err
}

// confirm gates the commit on user approval. Accepting commits the
// suggested text. Declining offers manual entry; the entered text is
// shown and confirmed once before it is used.
func (f *Flow) confirm(message suggest.Message) (suggest.Message, error) {
	ok, err := f.surface.Confirm("Use this commit message?", true)
	if err != nil {
		return suggest.Message{}, err
	}
	if ok {
		return message, nil
	}

	text, err := f.surface.ReadText("Enter custom commit message")
	if err != nil {
		return suggest.Message{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return suggest.Message{}, ErrUserCancelled
	}

	fmt.Fprintf(f.opts.OutWriter, "Commit message: %q\n", text)
	ok, err = f.surface.Confirm("Commit with this message?", true)
	if err != nil {
		return suggest.Message{}, err
	}
	if !ok {
		return suggest.Message{}, ErrUserCancelled
	}

	return suggest.Message{Text: text, Origin: suggest.OriginManual}, nil
}

func (f *Flow) report(outcome Outcome) {
	switch {
	case outcome.Err == nil:
	case errors.Is(outcome.Err, ErrNoChanges):
		fmt.Fprintln(f.opts.ErrWriter, "No changes to commit.")
	case errors.Is(outcome.Err, ErrUserCancelled):
		fmt.Fprintln(f.opts.ErrWriter, "Commit cancelled.")
	default:
		fmt.Fprintln(f.opts.ErrWriter, "Error:", outcome.Err)
	}
}

func abort(failedAt Step, err error) Outcome {
	return Outcome{Step: StepAborted, FailedAt: failedAt, Err: err}
}
