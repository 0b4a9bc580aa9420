package cafes

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/cafelike/domain"
)

// stubToggler keeps like states in memory and counts toggle calls.
type stubToggler struct {
	mu      sync.Mutex
	liked   map[domain.CafeID]bool
	toggles int
	err     error
}

func newStubToggler(liked ...domain.CafeID) *stubToggler {
	s := &stubToggler{liked: map[domain.CafeID]bool{}}
	for _, id := range liked {
		s.liked[id] = true
	}
	return s
}

func (s *stubToggler) Status(_ context.Context, id domain.CafeID) (domain.LikeState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return domain.LikeUnknown, s.err
	}
	return domain.StateOf(s.liked[id]), nil
}

func (s *stubToggler) Toggle(_ context.Context, id domain.CafeID) (domain.LikeState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggles++
	if s.err != nil {
		return domain.LikeUnknown, s.err
	}
	s.liked[id] = !s.liked[id]
	return domain.StateOf(s.liked[id]), nil
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runCmd executes cmd and feeds every message it yields, including those of
// batched commands, back into the model.
func runCmd(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = runCmd(m, c)
		}
	case StatusLoadedMsg, ToggleResultMsg:
		m, _ = m.Update(msg)
	}
	return m
}
