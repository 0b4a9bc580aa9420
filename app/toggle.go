package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/CrestNiraj12/cafelike/domain"
)

// ToggleController flips the like state of a cafe. The current state is
// re-read from the backend on every toggle; nothing is cached between calls.
//
// Toggles of the same cafe that overlap share one read-then-write sequence,
// so a double click cannot issue two conflicting writes. Different cafes
// toggle independently. A shared toggle is detached from the cancellation
// of whichever caller started it; each caller stops waiting when its own
// context ends, and timeout bounds the shared work.
type ToggleController struct {
	likes   LikeService
	log     *zap.Logger
	timeout time.Duration
	flight  singleflight.Group
}

var _ Toggler = (*ToggleController)(nil)

// NewToggleController wires a controller to a LikeService. timeout bounds
// one read-then-write sequence; zero means no bound. A nil logger disables
// logging.
func NewToggleController(likes LikeService, log *zap.Logger, timeout time.Duration) *ToggleController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ToggleController{likes: likes, log: log, timeout: timeout}
}

// Status reads the current state without changing it.
func (c *ToggleController) Status(ctx context.Context, id domain.CafeID) (domain.LikeState, error) {
	if err := id.Validate(); err != nil {
		return domain.LikeUnknown, err
	}
	liked, err := c.likes.IsLiked(ctx, id)
	if err != nil {
		return domain.LikeUnknown, fmt.Errorf("checking cafe %s: %w", id, err)
	}
	return domain.StateOf(liked), nil
}

// Toggle likes the cafe if it is not liked and unlikes it otherwise, then
// returns the new state. On error the state is LikeUnknown.
func (c *ToggleController) Toggle(ctx context.Context, id domain.CafeID) (domain.LikeState, error) {
	if err := id.Validate(); err != nil {
		return domain.LikeUnknown, err
	}
	ch := c.flight.DoChan(id.String(), func() (any, error) {
		flightCtx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			flightCtx, cancel = context.WithTimeout(flightCtx, c.timeout)
			defer cancel()
		}
		return c.toggle(flightCtx, id)
	})

	select {
	case <-ctx.Done():
		return domain.LikeUnknown, ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.log.Debug("toggle coalesced", zap.Int64("cafe_id", int64(id)))
		}
		if res.Err != nil {
			return domain.LikeUnknown, res.Err
		}
		return res.Val.(domain.LikeState), nil
	}
}

func (c *ToggleController) toggle(ctx context.Context, id domain.CafeID) (domain.LikeState, error) {
	current, err := c.Status(ctx, id)
	if err != nil {
		c.log.Warn("toggle status check failed", zap.Int64("cafe_id", int64(id)), zap.Error(err))
		return domain.LikeUnknown, err
	}

	next := current.Opposite()
	if _, err := c.likes.SetLiked(ctx, id, next == domain.LikeLiked); err != nil {
		c.log.Warn("toggle write failed",
			zap.Int64("cafe_id", int64(id)),
			zap.Stringer("want", next),
			zap.Error(err),
		)
		return domain.LikeUnknown, fmt.Errorf("setting cafe %s %s: %w", id, next, err)
	}

	c.log.Info("cafe toggled", zap.Int64("cafe_id", int64(id)), zap.Stringer("state", next))
	return next, nil
}
