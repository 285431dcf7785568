// Package ui implements the interactive confirmation prompts used by the
// install command when running in a terminal.
package ui

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/code-zen/zen/internal/terminal"
)

// ErrNoTerminal is returned when the UI is invoked without a terminal.
var ErrNoTerminal = errors.New("interactive prompts require a terminal")

// ErrAborted is returned when a prompt is dismissed with Esc or Ctrl+C.
// Callers treat it as a decline, which is always a benign terminal state.
var ErrAborted = errors.New("prompt aborted")

// UI defines the interaction methods the install command uses.
type UI interface {
	Confirm(title string, description string, value *bool) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return ErrNoTerminal
}

// confirmKeyMap maps both Esc and Ctrl+C to form abort. Single-question
// forms have no back navigation, so both keys mean "decline and leave".
func confirmKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}

// formFilter converts InterruptMsg (huh's CancelCmd or an external SIGINT)
// to QuitMsg so bubbletea takes the graceful shutdown path and the renderer
// clears the form output.
func formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm validates terminal availability and runs the provided form.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	form.WithKeyMap(confirmKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Confirm renders a yes/no prompt with an optional description body.
func (ui *HuhUI) Confirm(title string, description string, value *bool) error {
	confirm := huh.NewConfirm().
		Title(title).
		Value(value)
	if description != "" {
		confirm = confirm.Description(description)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(confirm)))
}
