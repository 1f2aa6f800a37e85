package option

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andrei-cloud/dhcp_o82/internal/cli"
)

type fieldConfig struct {
	name        string
	description string
	value       string
}

type createModel struct {
	currentField int
	fields       []fieldConfig
	done         bool
	cancelled    bool
}

// newCreateModel creates a new TUI model for entering sub option values.
func newCreateModel(circuitID, remoteID, subscriberID string) createModel {
	return createModel{
		fields: []fieldConfig{
			{
				name:        "Circuit ID",
				description: "vlan-module-port (e.g. 548-1-6) or text",
				value:       circuitID,
			},
			{
				name:        "Remote ID",
				description: "MAC address or text",
				value:       remoteID,
			},
			{
				name:        "Subscriber ID",
				description: "text, truncated to 50 characters",
				value:       subscriberID,
			},
		},
	}
}

// Init initializes the model.
func (m createModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m createModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	currentField := &m.fields[m.currentField]

	if keyMsg.Type == tea.KeyRunes {
		for _, r := range keyMsg.Runes {
			// text sub options are ASCII only.
			if r >= 0x20 && r <= 0x7e {
				currentField.value += string(r)
			}
		}

		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true

		return m, tea.Quit
	case "enter":
		if m.currentField >= len(m.fields)-1 {
			m.done = true

			return m, tea.Quit
		}
		m.currentField++
	case "tab", "down":
		if m.currentField < len(m.fields)-1 {
			m.currentField++
		}
	case "shift+tab", "up":
		if m.currentField > 0 {
			m.currentField--
		}
	case "backspace":
		if n := len(currentField.value); n > 0 {
			currentField.value = currentField.value[:n-1]
		}
	case "ctrl+u":
		currentField.value = ""
	case " ", "space":
		currentField.value += " "
	}

	return m, nil
}

// values returns circuit, remote and subscriber id in that order.
func (m createModel) values() [3]string {
	return [3]string{m.fields[0].value, m.fields[1].value, m.fields[2].value}
}

// preview renders the hex for the values entered so far.
func (m createModel) preview() string {
	v := m.values()
	h, err := cli.EncodeHex(v[0], v[1], v[2])
	if err != nil {
		return "(" + err.Error() + ")"
	}

	return h
}

// View renders the current state of the model.
func (m createModel) View() string {
	if m.done {
		return "Sub options entered.\n"
	}

	if m.cancelled {
		return "Operation cancelled.\n"
	}

	var s strings.Builder
	s.WriteString("Create Option 82 Lookup Key\n")
	s.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, field := range m.fields {
		selector := "  "
		cursor := ""
		if i == m.currentField {
			selector = "▶ "
			cursor = "_"
		}
		fmt.Fprintf(&s, "%s%s: [ %s%s ]\n", selector, field.name, field.value, cursor)
		if i == m.currentField {
			fmt.Fprintf(&s, "    %s\n", field.description)
		}
	}

	fmt.Fprintf(&s, "\nHex: %s\n\n", m.preview())

	s.WriteString("Navigation:\n")
	s.WriteString("  Tab/Shift+Tab or ↑/↓: Next/Previous field\n")
	s.WriteString("  Enter: Confirm and continue\n")
	s.WriteString("  Backspace: Delete character, Ctrl+U: Clear field\n")
	s.WriteString("  Esc or Ctrl+C: Quit\n")

	return s.String()
}

// runCreateTUI starts the interactive form and returns the entered values.
func runCreateTUI(cmd *cobra.Command, circuitID, remoteID, subscriberID string) ([3]string, bool, error) {
	model := newCreateModel(circuitID, remoteID, subscriberID)

	p := tea.NewProgram(
		model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	finalModel, err := p.Run()
	if err != nil {
		return [3]string{}, false, err
	}

	m := finalModel.(createModel)

	return m.values(), m.done && !m.cancelled, nil
}
