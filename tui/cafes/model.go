package cafes

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/cafelike/app"
	"github.com/CrestNiraj12/cafelike/domain"
	"github.com/CrestNiraj12/cafelike/tui/common"
)

// --- Messages ---

// StatusLoadedMsg carries the result of a read-only status check.
type StatusLoadedMsg struct {
	ID    domain.CafeID
	Gen   int // Row generation when the read was issued
	State domain.LikeState
	Err   error
}

// ToggleResultMsg carries the result of a like/unlike toggle.
type ToggleResultMsg struct {
	ID    domain.CafeID
	State domain.LikeState
	Err   error
}

// WatchlistChangedMsg is emitted when cafes are added or removed, so the
// root model can persist the list.
type WatchlistChangedMsg struct {
	Cafes []domain.CafeID
}

// --- Model ---

// Row is one like control.
type Row struct {
	ID      domain.CafeID
	State   domain.LikeState
	Pending bool  // A toggle is in flight; the control ignores input
	Err     error // Last failure, cleared by the next success
	Gen     int   // Bumped by every toggle; older status reads are stale
}

// Model holds the state for the list of like controls.
type Model struct {
	toggler  app.Toggler
	rows     []Row
	cursor   int
	keys     common.KeyMap
	spinner  spinner.Model
	help     help.Model
	input    textinput.Model
	adding   bool
	inputErr string
	width    int
	height   int
}

// New creates a model showing one control per cafe id. Duplicate and
// invalid ids are dropped.
func New(toggler app.Toggler, ids []domain.CafeID) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	in := textinput.New()
	in.Placeholder = "cafe id"
	in.CharLimit = 19
	in.Width = 20

	m := Model{
		toggler: toggler,
		keys:    common.DefaultKeyMap(),
		spinner: s,
		help:    help.New(),
		input:   in,
	}
	for _, id := range ids {
		m.addRow(id)
	}
	return m
}

// Init fetches every control's current state.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshAll(), m.spinner.Tick)
}

// Rows returns the current rows for external access.
func (m Model) Rows() []Row {
	return m.rows
}

// Cursor returns the current cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// IsEditing reports whether the model is capturing raw text input.
func (m Model) IsEditing() bool {
	return m.adding
}

// CafeIDs returns the watched cafe ids in display order.
func (m Model) CafeIDs() []domain.CafeID {
	ids := make([]domain.CafeID, len(m.rows))
	for i, r := range m.rows {
		ids[i] = r.ID
	}
	return ids
}

func (m *Model) addRow(id domain.CafeID) bool {
	if id.Validate() != nil || m.indexOf(id) >= 0 {
		return false
	}
	m.rows = append(m.rows, Row{ID: id, State: domain.LikeUnknown})
	return true
}

func (m Model) indexOf(id domain.CafeID) int {
	for i, r := range m.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
