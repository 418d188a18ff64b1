package domain

import (
	"strings"
	"time"
)

// StampLayout is the on-disk and on-screen layout of every ledger timestamp (local time).
const StampLayout = "2006-01-02 15:04"

// Stamp is a ledger timestamp kept as text so values that fail to parse survive a
// load/save round trip unchanged. The empty Stamp means "not set".
type Stamp string

// NewStamp formats t in the local zone at minute precision.
func NewStamp(t time.Time) Stamp {
	return Stamp(t.Local().Format(StampLayout))
}

// IsZero reports whether the stamp is unset.
func (s Stamp) IsZero() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Time parses the stamp in the local zone. ok is false for empty or malformed stamps.
func (s Stamp) Time() (t time.Time, ok bool) {
	if s.IsZero() {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(StampLayout, strings.TrimSpace(string(s)), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s Stamp) String() string {
	return string(s)
}

// NormalizeRoomNumber folds a room number into its lookup key.
func NormalizeRoomNumber(number string) string {
	return strings.ToLower(strings.TrimSpace(number))
}
