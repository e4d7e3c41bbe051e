package postgres

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"catalogue-service/internal/domain"
)

// cursor is the keyset position a page ends at. It is issued to callers as
// an opaque base64 token and round-tripped on the next request. Pages are
// ordered by (created_at, id), so the pair pins an exact position even when
// several rows share a timestamp.
type cursor struct {
	CreatedAt time.Time
	ID        string
}

// encodeCursor serialises the keyset position as an opaque token.
func encodeCursor(createdAt time.Time, id string) string {
	raw := fmt.Sprintf("%d:%s", createdAt.UnixNano(), id)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor parses a token previously issued by encodeCursor. A token
// that does not decode is a client error, not a store error.
func decodeCursor(token string) (*cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, domain.InvalidArgumentf("malformed cursor")
	}

	nanos, id, ok := strings.Cut(string(raw), ":")
	if !ok || id == "" {
		return nil, domain.InvalidArgumentf("malformed cursor")
	}

	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return nil, domain.InvalidArgumentf("malformed cursor")
	}

	return &cursor{
		CreatedAt: time.Unix(0, n).UTC(),
		ID:        id,
	}, nil
}
