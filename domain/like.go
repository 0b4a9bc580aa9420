package domain

// LikeState is what a like control displays for a cafe.
// It is always derived from the backend, never predicted.
type LikeState int

const (
	LikeUnknown LikeState = iota
	LikeNotLiked
	LikeLiked
)

// StateOf maps a backend boolean to a LikeState.
func StateOf(liked bool) LikeState {
	if liked {
		return LikeLiked
	}
	return LikeNotLiked
}

// Opposite returns the state a toggle moves to. Unknown stays Unknown.
func (s LikeState) Opposite() LikeState {
	switch s {
	case LikeLiked:
		return LikeNotLiked
	case LikeNotLiked:
		return LikeLiked
	default:
		return LikeUnknown
	}
}

// Icon mirrors the heart / heart-fill icons of the web control.
func (s LikeState) Icon() string {
	switch s {
	case LikeLiked:
		return "♥"
	case LikeNotLiked:
		return "♡"
	default:
		return "…"
	}
}

// Label is the text shown next to the icon. A liked control shows none.
func (s LikeState) Label() string {
	if s == LikeNotLiked {
		return " Like"
	}
	return ""
}

func (s LikeState) String() string {
	switch s {
	case LikeLiked:
		return "liked"
	case LikeNotLiked:
		return "not liked"
	default:
		return "unknown"
	}
}
