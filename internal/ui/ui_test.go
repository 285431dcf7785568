package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunForm(t *testing.T, fn func(*huh.Form) error) {
	t.Helper()
	prev := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = prev })
}

func TestConfirmWithoutTerminal(t *testing.T) {
	stubRunForm(t, func(*huh.Form) error {
		t.Fatal("form must not run without a terminal")
		return nil
	})
	ui := &HuhUI{isTerminal: func() bool { return false }}

	var value bool
	err := ui.Confirm("Replace?", "", &value)

	assert.ErrorIs(t, err, ErrNoTerminal)
}

func TestConfirmRunsForm(t *testing.T) {
	ran := false
	stubRunForm(t, func(form *huh.Form) error {
		require.NotNil(t, form)
		ran = true
		return nil
	})
	ui := &HuhUI{isTerminal: func() bool { return true }}

	var value bool
	err := ui.Confirm("Replace?", "The directory already exists.", &value)

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestConfirmAbortMapsToErrAborted(t *testing.T) {
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })
	ui := &HuhUI{isTerminal: func() bool { return true }}

	var value bool
	err := ui.Confirm("Replace?", "", &value)

	assert.ErrorIs(t, err, ErrAborted)
}

func TestConfirmPropagatesOtherErrors(t *testing.T) {
	boom := errors.New("render failed")
	stubRunForm(t, func(*huh.Form) error { return boom })
	ui := &HuhUI{isTerminal: func() bool { return true }}

	var value bool
	err := ui.Confirm("Replace?", "", &value)

	assert.ErrorIs(t, err, boom)
}

func TestFormFilterConvertsInterruptToQuit(t *testing.T) {
	filter := formFilter()

	assert.Equal(t, tea.QuitMsg{}, filter(nil, tea.InterruptMsg{}))
}

func TestFormFilterPassesOtherMessages(t *testing.T) {
	filter := formFilter()
	msg := tea.KeyMsg{Type: tea.KeyEnter}

	assert.Equal(t, msg, filter(nil, msg))
}
