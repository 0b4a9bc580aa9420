package cafeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/CrestNiraj12/cafelike/app"
	"github.com/CrestNiraj12/cafelike/domain"
)

// LikeService implements app.LikeService against the likes endpoints.
type LikeService struct {
	client *Client
}

var _ app.LikeService = (*LikeService)(nil)

// NewLikeService creates a LikeService backed by the Flask Cafe API.
func NewLikeService(client *Client) *LikeService {
	return &LikeService{client: client}
}

type likeRequest struct {
	CafeID domain.CafeID `json:"cafe_id"`
}

// IsLiked asks GET likes?cafe_id=<id> and reads the "likes" field.
func (s *LikeService) IsLiked(ctx context.Context, id domain.CafeID) (bool, error) {
	q := url.Values{}
	q.Set("cafe_id", id.String())

	data, err := s.client.Get(ctx, "likes", q)
	if err != nil {
		return false, fmt.Errorf("checking like: %w", err)
	}

	fields, err := decodeObject(data)
	if err != nil {
		return false, fmt.Errorf("parsing likes response: %w", err)
	}
	raw, ok := fields["likes"]
	if !ok {
		return false, fmt.Errorf("parsing likes response: %w: missing \"likes\"", domain.ErrInvalidResponse)
	}
	var liked bool
	if err := json.Unmarshal(raw, &liked); err != nil {
		return false, fmt.Errorf("parsing likes response: %w: \"likes\" is %s", domain.ErrInvalidResponse, raw)
	}
	return liked, nil
}

// SetLiked posts to "like" or "unlike" and returns the acknowledgement.
func (s *LikeService) SetLiked(ctx context.Context, id domain.CafeID, liked bool) (app.Ack, error) {
	endpoint, field := "unlike", "unliked"
	if liked {
		endpoint, field = "like", "liked"
	}

	data, err := s.client.PostJSON(ctx, endpoint, likeRequest{CafeID: id})
	if err != nil {
		return app.Ack{}, fmt.Errorf("posting %s: %w", endpoint, err)
	}

	fields, err := decodeObject(data)
	if err != nil {
		return app.Ack{}, fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	raw, ok := fields[field]
	if !ok {
		return app.Ack{}, fmt.Errorf("parsing %s response: %w: missing %q", endpoint, domain.ErrInvalidResponse, field)
	}
	return app.Ack{Liked: liked, CafeID: raw}, nil
}

// Like is SetLiked(ctx, id, true).
func (s *LikeService) Like(ctx context.Context, id domain.CafeID) (app.Ack, error) {
	return s.SetLiked(ctx, id, true)
}

// Unlike is SetLiked(ctx, id, false).
func (s *LikeService) Unlike(ctx context.Context, id domain.CafeID) (app.Ack, error) {
	return s.SetLiked(ctx, id, false)
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidResponse, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: not a JSON object", domain.ErrInvalidResponse)
	}
	return fields, nil
}
