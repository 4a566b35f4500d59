// Package pagination pages newest-first slices with opaque cursors.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

var ErrInvalidCursor = errors.New("invalid cursor")

type Params struct {
	Limit  int
	Cursor string
}

// Cursor points at the last row of the previous page.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// EncodeCursor produces a URL-safe token so it can travel in a query string unescaped.
func EncodeCursor(cursor Cursor) string {
	raw := cursor.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + cursor.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// ParseCursor returns nil for an empty value. Every malformed cursor wraps ErrInvalidCursor.
func ParseCursor(value string) (*Cursor, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	stamp, id, found := strings.Cut(string(decoded), "|")
	if !found || id == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidCursor)
	}
	at, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	return &Cursor{CreatedAt: at, ID: id}, nil
}

// Page slices rows that are already in newest-first order. The cursor row itself
// is skipped; next is nil on the last page.
func Page[T any](rows []T, params Params, keyOf func(T) Cursor) ([]T, *Cursor, error) {
	limit := NormalizeLimit(params.Limit)
	start := 0
	cursor, err := ParseCursor(params.Cursor)
	if err != nil {
		return nil, nil, err
	}
	if cursor != nil {
		start = len(rows)
		for i, row := range rows {
			if keyOf(row).ID == cursor.ID {
				start = i + 1
				break
			}
		}
	}

	end := start + limit
	if end >= len(rows) {
		return append([]T(nil), rows[start:]...), nil, nil
	}
	page := append([]T(nil), rows[start:end]...)
	next := keyOf(page[len(page)-1])
	return page, &next, nil
}
