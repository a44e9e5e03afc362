package repository

import (
	"encoding/json"
	"time"
)

// Timestamps cross the storage boundary as RFC3339 UTC strings with a
// fixed-width nanosecond fraction. The fixed width matters: RFC3339Nano
// trims trailing zeros, which would let "10:00:00Z" sort after
// "10:00:00.5Z". With every value the same length and zone, lexicographic
// order equals chronological order, which the list queries rely on for
// ORDER BY.

const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func encodeTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

func decodeTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// String lists (amenities, images) are stored as JSON arrays in TEXT
// columns, keeping the schema-less shape of the original documents.

func encodeStrings(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func decodeStrings(s string) []string {
	var v []string
	if err := json.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return []string{}
	}
	return v
}
