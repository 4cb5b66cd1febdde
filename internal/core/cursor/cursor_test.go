package cursor_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"yardsale/internal/core/cursor"
)

var startsAt = time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)

func TestRoundTrip(t *testing.T) {
	keys := []cursor.Key{
		{DistanceMeters: 5123.75, StartsAt: startsAt, ID: "sale-0001"},
		{DistanceMeters: 0, StartsAt: startsAt, ID: "a"}, // zero distance boundary
		{DistanceMeters: 160000, StartsAt: time.UnixMilli(0).UTC(), ID: "z"},
	}
	for _, k := range keys {
		got, err := cursor.Decode(cursor.Encode(k))
		if err != nil {
			t.Fatalf("Decode(Encode(%+v)): %v", k, err)
		}
		if got.DistanceMeters != k.DistanceMeters || !got.StartsAt.Equal(k.StartsAt) || got.ID != k.ID {
			t.Fatalf("round trip mismatch: got %+v want %+v", got, k)
		}
	}
}

func TestTokenIsOpaqueURLSafe(t *testing.T) {
	tok := cursor.Encode(cursor.Key{DistanceMeters: 1, StartsAt: startsAt, ID: "x/y+z"})
	if strings.ContainsAny(tok, "+/=") {
		t.Fatalf("token %q is not url-safe", tok)
	}
	if strings.Contains(tok, "sale") || strings.Contains(tok, "{") {
		t.Fatalf("token %q leaks plaintext", tok)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, tok := range []string{
		"",
		"!!!not base64!!!",
		"bm90IGpzb24",     // "not json"
		"e30",              // "{}" decodes but has no id
		"eyJkIjoib29wcyJ9", // {"d":"oops"} has the wrong type
	} {
		if _, err := cursor.Decode(tok); !errors.Is(err, cursor.ErrDecode) {
			t.Fatalf("Decode(%q) err = %v, want ErrDecode", tok, err)
		}
	}
}

func TestKeyOrdering(t *testing.T) {
	base := cursor.Key{DistanceMeters: 100, StartsAt: startsAt, ID: "m"}
	cases := []struct {
		name string
		a, b cursor.Key
	}{
		{"distance wins", base, cursor.Key{DistanceMeters: 101, StartsAt: startsAt.Add(-time.Hour), ID: "a"}},
		{"startsAt breaks distance tie", base, cursor.Key{DistanceMeters: 100, StartsAt: startsAt.Add(time.Minute), ID: "a"}},
		{"id breaks full tie", base, cursor.Key{DistanceMeters: 100, StartsAt: startsAt, ID: "n"}},
	}
	for _, tc := range cases {
		if !tc.a.Less(tc.b) {
			t.Errorf("%s: %+v should sort before %+v", tc.name, tc.a, tc.b)
		}
		if tc.b.Less(tc.a) {
			t.Errorf("%s: ordering not antisymmetric", tc.name)
		}
	}
	if base.Less(base) {
		t.Error("key must not sort before itself")
	}
}

func TestAfterIsStrict(t *testing.T) {
	k := cursor.Key{DistanceMeters: 100, StartsAt: startsAt, ID: "m"}
	if k.After(k) {
		t.Fatal("a row equal to the cursor must be dropped, not resumed")
	}
	next := cursor.Key{DistanceMeters: 100, StartsAt: startsAt, ID: "n"}
	if !next.After(k) {
		t.Fatal("the next id in a full tie must survive the cursor slice")
	}
}
