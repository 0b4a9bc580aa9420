package cafes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/cafelike/domain"
)

// Update handles messages for the list of like controls.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StatusLoadedMsg:
		i := m.indexOf(msg.ID)
		// A toggle in flight, or one issued after this read started, knows
		// a fresher state.
		if i < 0 || m.rows[i].Pending || msg.Gen < m.rows[i].Gen {
			return m, nil
		}
		if msg.Err != nil {
			m.rows[i].Err = msg.Err
			return m, nil
		}
		m.rows[i].State = msg.State
		m.rows[i].Err = nil
		return m, nil

	case ToggleResultMsg:
		i := m.indexOf(msg.ID)
		if i < 0 {
			return m, nil
		}
		m.rows[i].Pending = false
		if msg.Err != nil {
			// Keep the last confirmed state on screen.
			m.rows[i].Err = msg.Err
			return m, nil
		}
		m.rows[i].State = msg.State
		m.rows[i].Err = nil
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(m.rows) == 0 {
			break
		}
		r := &m.rows[m.cursor]
		if r.Pending {
			break
		}
		r.Pending = true
		r.Gen++
		return m, m.toggle(r.ID)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshAll()

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.inputErr = ""
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Remove):
		if len(m.rows) == 0 {
			break
		}
		m.rows = append(m.rows[:m.cursor], m.rows[m.cursor+1:]...)
		if m.cursor >= len(m.rows) && m.cursor > 0 {
			m.cursor--
		}
		return m, m.watchlistChanged()

	case key.Matches(msg, m.keys.ToggleHints):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.inputErr = ""
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		id, err := domain.ParseCafeID(m.input.Value())
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		if m.indexOf(id) >= 0 {
			m.inputErr = "cafe " + id.String() + " is already listed"
			return m, nil
		}
		m.addRow(id)
		m.cursor = len(m.rows) - 1
		m.adding = false
		m.inputErr = ""
		m.input.Blur()
		return m, tea.Batch(m.fetchStatus(id, 0), m.watchlistChanged())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
