package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CrestNiraj12/cafelike/domain"
)

const maxParallelStatus = 4

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <cafe-id>...",
		Short: "Show whether cafes are liked",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseCafeIDs(args)
			if err != nil {
				return err
			}
			svc, err := newServices(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = svc.log.Sync() }()

			states := make([]domain.LikeState, len(ids))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxParallelStatus)
			for i, id := range ids {
				g.Go(func() error {
					st, err := svc.toggler.Status(ctx, id)
					if err != nil {
						return err
					}
					states[i] = st
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for i, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "cafe %s: %s\n", id, states[i])
			}
			return nil
		},
	}
}

// newSetCmd builds the "like" and "unlike" commands, which write the
// desired state without reading it first.
func newSetCmd(opts *rootOptions, liked bool) *cobra.Command {
	use, short := "unlike", "Unlike a cafe"
	if liked {
		use, short = "like", "Like a cafe"
	}
	return &cobra.Command{
		Use:   use + " <cafe-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseCafeID(args[0])
			if err != nil {
				return err
			}
			svc, err := newServices(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = svc.log.Sync() }()

			ack, err := svc.likes.SetLiked(cmd.Context(), id, liked)
			if err != nil {
				return err
			}
			svc.log.Debug("like written", zap.Int64("cafe_id", int64(id)), zap.Bool("liked", liked), zap.ByteString("ack", ack.CafeID))
			fmt.Fprintf(cmd.OutOrStdout(), "cafe %s: %s\n", id, domain.StateOf(liked))
			return nil
		},
	}
}

func newToggleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <cafe-id>",
		Short: "Like a cafe if it is not liked, unlike it otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseCafeID(args[0])
			if err != nil {
				return err
			}
			svc, err := newServices(opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = svc.log.Sync() }()

			st, err := svc.toggler.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cafe %s: %s%s (%s)\n", id, st.Icon(), st.Label(), st)
			return nil
		},
	}
}
