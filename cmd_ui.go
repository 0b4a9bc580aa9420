package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/cafelike/domain"
	"github.com/CrestNiraj12/cafelike/infra/config"
	"github.com/CrestNiraj12/cafelike/tui"
)

func newUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui [cafe-id]...",
		Short: "Open the interactive like controls",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts, args)
		},
	}
}

func runUI(_ *cobra.Command, opts *rootOptions, args []string) error {
	ids, err := parseCafeIDs(args)
	if err != nil {
		return err
	}
	svc, err := newServices(opts, true)
	if err != nil {
		return err
	}
	defer func() { _ = svc.log.Sync() }()

	uiState, err := config.LoadUIState(svc.cfg.StatePath)
	if err != nil {
		// A corrupt state file should not keep the UI from starting.
		svc.log.Warn("ignoring ui state", zap.Error(err))
	}
	ids = mergeCafeIDs(uiState.Cafes, ids)

	p := tea.NewProgram(tui.NewApp(tui.Deps{
		Toggler:   svc.toggler,
		Cafes:     ids,
		StatePath: svc.cfg.StatePath,
		Log:       svc.log,
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// mergeCafeIDs returns the saved ids followed by new ones from the command
// line, without duplicates.
func mergeCafeIDs(saved []int64, args []domain.CafeID) []domain.CafeID {
	out := make([]domain.CafeID, 0, len(saved)+len(args))
	seen := make(map[domain.CafeID]struct{}, cap(out))
	add := func(id domain.CafeID) {
		if _, ok := seen[id]; ok || id.Validate() != nil {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range saved {
		add(domain.CafeID(id))
	}
	for _, id := range args {
		add(id)
	}
	return out
}
