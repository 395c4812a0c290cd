// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is the Bubble Tea model for a single masked secret input.
// enter submits the entered value; esc and ctrl+c abort the prompt.
type promptModel struct {
	prompt string
	input  textinput.Model

	done    bool
	aborted bool
}

func newPromptModel(prompt string) promptModel {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return promptModel{
		prompt: prompt,
		input:  input,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. enter finishes the prompt, esc and
// ctrl+c abort it; every other key event goes to the input widget.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: submit • esc: skip account"))
	b.WriteString("\n")
	return b.String()
}

// TerminalPrompter asks the operator for secrets in the terminal. It
// implements the service layer's Prompter interface.
type TerminalPrompter struct{}

// NewTerminalPrompter returns a prompter bound to the current terminal.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Password shows a masked input below prompt and returns the entered
// value. An aborted prompt returns [ErrPromptAborted].
func (p *TerminalPrompter) Password(ctx context.Context, prompt string) (string, error) {
	program := tea.NewProgram(newPromptModel(prompt), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("password prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok || m.aborted {
		return "", ErrPromptAborted
	}

	return m.input.Value(), nil
}
