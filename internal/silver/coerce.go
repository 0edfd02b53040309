// Package silver enforces the stable Silver schema: every column coerced to
// its canonical type, with explicit per-column default policy.
package silver

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the fixed calendar-date format used by the draw files.
const DateLayout = "02/01/2006"

// IsSentinel reports whether a raw value is a textual null placeholder.
// Sentinels are canonicalized to null before any type coercion.
func IsSentinel(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || strings.EqualFold(s, "n/a")
}

// CoerceString canonicalizes a free-text column: sentinels become nil,
// everything else is kept trimmed.
func CoerceString(raw string) *string {
	if IsSentinel(raw) {
		return nil
	}
	s := strings.TrimSpace(raw)
	return &s
}

// CoerceStringPtr is CoerceString for columns that are already nullable.
func CoerceStringPtr(raw *string) *string {
	if raw == nil {
		return nil
	}
	return CoerceString(*raw)
}

// CoerceInt64 coerces an optional identifying integer. Sentinels and values
// that fail numeric parsing become nil, never an error.
func CoerceInt64(raw string) *int64 {
	if IsSentinel(raw) {
		return nil
	}
	v, err := strconv.ParseInt(stripThousands(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// CoerceInt64Default coerces a required integer column. The bool reports
// whether the default was used, so a genuine zero stays distinguishable from
// a coerced one.
func CoerceInt64Default(raw string, def int64) (int64, bool) {
	if v := CoerceInt64(raw); v != nil {
		return *v, false
	}
	return def, true
}

// CoerceFloat64Default coerces a monetary column. Invalid or missing values
// become the default, never null.
func CoerceFloat64Default(raw string, def float64) (float64, bool) {
	if IsSentinel(raw) {
		return def, true
	}
	v, err := strconv.ParseFloat(stripThousands(raw), 64)
	if err != nil {
		return def, true
	}
	return v, false
}

// CoerceDate strictly parses a DD/MM/YYYY date. Failures yield nil, not an
// error; the partition-year derivation decides whether that is fatal.
func CoerceDate(raw string) *time.Time {
	if IsSentinel(raw) {
		return nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &t
}

// stripThousands removes grouping commas and currency markers so "Q 1,500.00"
// and "1,500.00" coerce the same way.
func stripThousands(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "Q.")
	s = strings.TrimPrefix(s, "Q")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
