package workflow

import (
	"github.com/charmbracelet/huh"
)

// Surface is the prompt capability the workflow consumes. Any
// front-end that can ask a question may back it; the workflow never
// depends on a particular rendering technology.
type Surface interface {
	ChooseOne(prompt string, options []string) (int, error)
	Confirm(prompt string, def bool) (bool, error)
	ReadText(prompt string) (string, error)
}

// HuhSurface renders prompts as charmbracelet/huh forms on the
// controlling terminal.
type HuhSurface struct{}

func (HuhSurface) ChooseOne(prompt string, options []string) (int, error) {
	opts := make([]huh.Option[int], 0, len(options))
	for i, option := range options {
		opts = append(opts, huh.NewOption(option, i))
	}

	var selected int
	if err := huh.NewSelect[int]().Title(prompt).Options(opts...).Value(&selected).Run(); err != nil {
		return 0, err
	}
	return selected, nil
}

func (HuhSurface) Confirm(prompt string, def bool) (bool, error) {
	ok := def
	if err := huh.NewConfirm().Title(prompt).Value(&ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func (HuhSurface) ReadText(prompt string) (string, error) {
	var text string
	if err := huh.NewInput().Title(prompt).Value(&text).Run(); err != nil {
		return "", err
	}
	return text, nil
}
