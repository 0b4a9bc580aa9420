package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CafeID identifies a cafe on the backend. Only positive values are valid.
type CafeID int64

// ParseCafeID parses a cafe id as read from a control or the command line.
func ParseCafeID(s string) (CafeID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCafeID, s)
	}
	id := CafeID(n)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports ErrInvalidCafeID for non-positive ids.
func (id CafeID) Validate() error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCafeID, int64(id))
	}
	return nil
}

func (id CafeID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
