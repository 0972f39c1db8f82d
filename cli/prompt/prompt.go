// Package prompt asks the operator questions in a terminal.
package prompt

import (
	"errors"
	"io"
	"strings"

	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/manifoldco/promptui"
)

// Prompter is an interface for asking the operator questions.
type Prompter interface {
	// Input asks for a line of text. Returns defaultValue on empty input.
	Input(label, defaultValue string) (string, error)
	// Select asks to choose one of items. Returns the index of the chosen item.
	Select(label string, items []string, defaultIndex int) (int, error)
	// Confirm asks a yes/no question.
	Confirm(label string, defaultYes bool) (bool, error)
}

// TerminalPrompter implements Prompter using interactive terminal prompts.
type TerminalPrompter struct {
	// Stdin is a prompts input. os.Stdin is used if nil.
	Stdin io.ReadCloser
	// Stdout is a prompts output. os.Stdout is used if nil.
	Stdout io.WriteCloser
}

// NewTerminalPrompter creates new terminal prompter reading from stdin.
func NewTerminalPrompter() TerminalPrompter {
	return TerminalPrompter{}
}

// convertErr maps promptui interruptions to ErrCmdAbort.
func convertErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return util.ErrCmdAbort
	}
	return err
}

// Input asks for a line of text.
func (prompter TerminalPrompter) Input(label, defaultValue string) (string, error) {
	inputPrompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
		Stdin:   prompter.Stdin,
		Stdout:  prompter.Stdout,
	}
	result, err := inputPrompt.Run()
	if err != nil {
		return "", convertErr(err)
	}
	if strings.TrimSpace(result) == "" {
		return defaultValue, nil
	}
	return result, nil
}

// Select shows a menu of items.
func (prompter TerminalPrompter) Select(label string, items []string,
	defaultIndex int) (int, error) {
	itemSelect := promptui.Select{
		Label:        label,
		Items:        items,
		CursorPos:    defaultIndex,
		HideSelected: true,
		Stdin:        prompter.Stdin,
		Stdout:       prompter.Stdout,
	}
	index, _, err := itemSelect.Run()
	if err != nil {
		return -1, convertErr(err)
	}
	return index, nil
}

// Confirm asks a yes/no question. Empty input selects the default answer.
func (prompter TerminalPrompter) Confirm(label string, defaultYes bool) (bool, error) {
	confirmPrompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     prompter.Stdin,
		Stdout:    prompter.Stdout,
	}
	if defaultYes {
		confirmPrompt.Default = "y"
	} else {
		confirmPrompt.Default = "n"
	}

	_, err := confirmPrompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, convertErr(err)
	}
	return true, nil
}
