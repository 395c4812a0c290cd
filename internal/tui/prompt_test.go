// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeKeys(t *testing.T, m promptModel, keys string) promptModel {
	t.Helper()

	for _, r := range keys {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(promptModel)
	}
	return m
}

func TestPromptModel_EnterSubmits(t *testing.T) {
	m := newPromptModel("Master password for ops@example.com")
	m = typeKeys(t, m, "hunter2")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(promptModel)

	require.True(t, m.done)
	require.False(t, m.aborted)
	require.Equal(t, "hunter2", m.input.Value())
	require.NotNil(t, cmd)
}

func TestPromptModel_EscAborts(t *testing.T) {
	m := newPromptModel("Master password")
	m = typeKeys(t, m, "partial")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(promptModel)

	require.True(t, m.aborted)
	require.False(t, m.done)
	require.NotNil(t, cmd)
}

func TestPromptModel_CtrlCAborts(t *testing.T) {
	m := newPromptModel("Master password")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(promptModel)

	require.True(t, m.aborted)
}

func TestPromptModel_MasksInput(t *testing.T) {
	m := newPromptModel("Master password")

	require.Equal(t, textinput.EchoPassword, m.input.EchoMode)

	m = typeKeys(t, m, "secret")
	require.NotContains(t, m.View(), "secret")
}

func TestPromptModel_ViewShowsPromptAndHelp(t *testing.T) {
	m := newPromptModel("Encryption password")

	view := m.View()
	require.Contains(t, view, "Encryption password")
	require.Contains(t, view, "esc: skip account")
}
