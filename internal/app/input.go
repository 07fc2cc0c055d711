package app

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// seedInput wraps bubbles/textinput for the optional opening sentence.
type seedInput struct {
	Model textinput.Model
}

func newSeedInput(placeholder string, charLimit int) seedInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Focus()
	return seedInput{Model: ti}
}

func (s seedInput) Init() tea.Cmd {
	return s.Model.Focus()
}

func (s seedInput) Update(msg tea.Msg) (seedInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

func (s seedInput) View() string {
	return s.Model.View()
}

func (s seedInput) Value() string {
	return s.Model.Value()
}
