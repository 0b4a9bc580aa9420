package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/cafelike/app"
	"github.com/CrestNiraj12/cafelike/domain"
	"github.com/CrestNiraj12/cafelike/infra/config"
	"github.com/CrestNiraj12/cafelike/tui/cafes"
	"github.com/CrestNiraj12/cafelike/tui/common"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Toggler   app.Toggler
	Cafes     []domain.CafeID
	StatePath string // Empty disables persisting the watch list
	Log       *zap.Logger
}

type stateSavedMsg struct {
	Err error
}

// App is the root Bubble Tea model. It owns the status bar and persistence;
// the like controls live in the cafes sub-model.
type App struct {
	deps   Deps
	cafes  cafes.Model
	keys   common.KeyMap
	status string // Transient status message (e.g. "Cafe #3 liked.")
	isErr  bool
	width  int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return App{
		deps:  deps,
		cafes: cafes.New(deps.Toggler, deps.Cafes),
		keys:  common.DefaultKeyMap(),
	}
}

// Init delegates to the list of controls.
func (a App) Init() tea.Cmd {
	return a.cafes.Init()
}

// Update handles messages and routes the rest to the list of controls.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Quit) && !a.cafes.IsEditing() {
			return a, tea.Quit
		}
		a.setStatus("", false)

	case tea.WindowSizeMsg:
		a.width = msg.Width

	case cafes.ToggleResultMsg:
		if msg.Err != nil {
			a.deps.Log.Warn("toggle failed", zap.Int64("cafe_id", int64(msg.ID)), zap.Error(msg.Err))
			a.setStatus(fmt.Sprintf("Error: cafe #%s: %v", msg.ID, msg.Err), true)
		} else {
			verb := "liked"
			if msg.State != domain.LikeLiked {
				verb = "unliked"
			}
			a.setStatus(fmt.Sprintf("%s Cafe #%s %s.", msg.State.Icon(), msg.ID, verb), false)
		}

	case cafes.StatusLoadedMsg:
		if msg.Err != nil {
			a.deps.Log.Warn("status check failed", zap.Int64("cafe_id", int64(msg.ID)), zap.Error(msg.Err))
			a.setStatus(fmt.Sprintf("Error: cafe #%s: %v", msg.ID, msg.Err), true)
		}

	case cafes.WatchlistChangedMsg:
		return a, a.saveState(msg.Cafes)

	case stateSavedMsg:
		if msg.Err != nil {
			a.deps.Log.Warn("saving ui state failed", zap.Error(msg.Err))
			a.setStatus("Error saving cafes: "+msg.Err.Error(), true)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.cafes, cmd = a.cafes.Update(msg)
	return a, cmd
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.isErr = isErr
}

func (a App) saveState(ids []domain.CafeID) tea.Cmd {
	path := a.deps.StatePath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		st := config.UIState{Cafes: make([]int64, len(ids))}
		for i, id := range ids {
			st.Cafes[i] = int64(id)
		}
		return stateSavedMsg{Err: config.SaveUIState(path, st)}
	}
}

// View renders the list of controls and the status bar.
func (a App) View() string {
	s := a.cafes.View()

	// Append transient status if present.
	if a.status != "" {
		line := common.FitWidth(a.status, a.width)
		if a.isErr {
			line = common.ErrorStyle.Render(line)
		}
		s += "\n" + common.StatusBarStyle.Render(line)
	}

	return s
}
