// Package dateval coerces the "time" qualifier's date operand into a
// local-midnight epoch millisecond value, the form both the operand's cast
// value and a file's mtime query value take so they can be compared.
package dateval

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// MidnightMillis parses operand as a calendar date using a permissive parser
// (rather than a single fixed layout, per the qualifier's "any value
// parseable as a calendar date" rule) and truncates it to local midnight,
// returned as epoch milliseconds.
func MidnightMillis(operand string) (int64, error) {
	t, err := dateparse.ParseLocal(operand)
	if err != nil {
		return 0, fmt.Errorf("In TIME: %w", err)
	}
	return Truncate(t).UnixMilli(), nil
}

// Truncate returns the local midnight preceding t.
func Truncate(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TruncateMillis is a convenience wrapper returning Truncate(t) as epoch
// milliseconds, used to coerce a file's mtime into a query value.
func TruncateMillis(t time.Time) int64 {
	return Truncate(t).UnixMilli()
}
