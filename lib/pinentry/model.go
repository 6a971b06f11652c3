// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pinentry

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines the PIN prompt key bindings. Digits are not bound;
// they are taken from rune input directly.
type KeyMap struct {
	Submit key.Binding
	Delete key.Binding
	Cancel key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter", "ctrl+j"),
		key.WithHelp("enter", "submit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("backspace", "delete digit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	),
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	maskStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// model is the bubbletea model of the masked prompt.
type model struct {
	keys      KeyMap
	label     string
	digits    []byte
	submitted bool
	cancelled bool
}

func newModel(label string) model {
	return model{keys: DefaultKeyMap, label: label, digits: make([]byte, 0, MaxDigits)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, ok := message.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMessage, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMessage, m.keys.Submit):
		m.submitted = true
		return m, tea.Quit
	case key.Matches(keyMessage, m.keys.Delete):
		if len(m.digits) > 0 {
			m.digits = m.digits[:len(m.digits)-1]
		}
		return m, nil
	}

	if keyMessage.Type != tea.KeyRunes {
		return m, nil
	}
	for _, r := range keyMessage.Runes {
		if r < '0' || r > '9' {
			continue
		}
		m.digits = append(m.digits, byte(r))
		if len(m.digits) == MaxDigits {
			m.submitted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	line := labelStyle.Render(m.label) + maskStyle.Render(strings.Repeat("*", len(m.digits)))
	if m.submitted || m.cancelled {
		return line + "\n"
	}
	return line
}

// pin returns the entered PIN.
func (m model) pin() uint64 {
	return Parse(string(m.digits))
}
