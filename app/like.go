package app

import (
	"context"
	"encoding/json"

	"github.com/CrestNiraj12/cafelike/domain"
)

// Ack is the backend acknowledgement of a like or unlike write.
type Ack struct {
	Liked bool
	// CafeID is the raw value of the "liked"/"unliked" field. The backend
	// does not promise a type for it, so it is kept undecoded.
	CafeID json.RawMessage
}

// LikeService reads and writes the like relationship between the session's
// user and a cafe.
type LikeService interface {
	// IsLiked reports whether the cafe is currently liked.
	IsLiked(ctx context.Context, id domain.CafeID) (bool, error)

	// SetLiked likes (true) or unlikes (false) the cafe.
	SetLiked(ctx context.Context, id domain.CafeID, liked bool) (Ack, error)
}

// Toggler drives a like control: it reads a cafe's state and flips it.
// Implemented by ToggleController.
type Toggler interface {
	Status(ctx context.Context, id domain.CafeID) (domain.LikeState, error)
	Toggle(ctx context.Context, id domain.CafeID) (domain.LikeState, error)
}
