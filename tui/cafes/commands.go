package cafes

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/cafelike/domain"
)

func (m Model) fetchStatus(id domain.CafeID, gen int) tea.Cmd {
	toggler := m.toggler
	return func() tea.Msg {
		state, err := toggler.Status(context.Background(), id)
		return StatusLoadedMsg{ID: id, Gen: gen, State: state, Err: err}
	}
}

func (m Model) refreshAll() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.rows))
	for _, r := range m.rows {
		if r.Pending {
			continue
		}
		cmds = append(cmds, m.fetchStatus(r.ID, r.Gen))
	}
	return tea.Batch(cmds...)
}

func (m Model) toggle(id domain.CafeID) tea.Cmd {
	toggler := m.toggler
	return func() tea.Msg {
		state, err := toggler.Toggle(context.Background(), id)
		return ToggleResultMsg{ID: id, State: state, Err: err}
	}
}

func (m Model) watchlistChanged() tea.Cmd {
	ids := m.CafeIDs()
	return func() tea.Msg {
		return WatchlistChangedMsg{Cafes: ids}
	}
}
