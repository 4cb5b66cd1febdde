// Package cursor implements the opaque pagination token for radius
// search results. The token carries the sort key of the last emitted
// row as the full resume state, so pagination is stateless on the
// server. The encoding is internal and may change between versions.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

// Key is the (distance, startsAt, id) sort key of a result row. The id
// exists only to make the ordering total and the cursor deterministic.
type Key struct {
	DistanceMeters float64
	StartsAt       time.Time
	ID             string
}

// ErrDecode reports a token that is not one of ours. Callers treat this
// as "no cursor" rather than failing the request.
var ErrDecode = errors.New("cursor: undecodable token")

// payload is the wire shape; startsAt travels as unix milliseconds so
// the token stays compact and timezone-free
type payload struct {
	D  float64 `json:"d"`
	S  int64   `json:"s"`
	ID string  `json:"id"`
}

// Encode serializes k into an opaque url-safe token
func Encode(k Key) string {
	raw, _ := json.Marshal(payload{
		D:  k.DistanceMeters,
		S:  k.StartsAt.UnixMilli(),
		ID: k.ID,
	})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode parses a token produced by Encode. Malformed input returns
// ErrDecode; it never panics on hostile tokens.
func Decode(token string) (Key, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Key{}, ErrDecode
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Key{}, ErrDecode
	}
	if p.ID == "" {
		return Key{}, ErrDecode
	}
	return Key{
		DistanceMeters: p.D,
		StartsAt:       time.UnixMilli(p.S).UTC(),
		ID:             p.ID,
	}, nil
}

// Less orders keys ascending by (distance, startsAt, id)
func (k Key) Less(o Key) bool {
	if k.DistanceMeters != o.DistanceMeters {
		return k.DistanceMeters < o.DistanceMeters
	}
	if !k.StartsAt.Equal(o.StartsAt) {
		return k.StartsAt.Before(o.StartsAt)
	}
	return k.ID < o.ID
}

// After reports whether k sorts strictly after resume. Pages drop every
// row whose key is <= the decoded cursor, so the next page starts on
// the first row After it.
func (k Key) After(resume Key) bool {
	return resume.Less(k)
}
