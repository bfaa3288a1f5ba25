package period

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Multipliers in seconds. Months and years are fixed-length, not calendar-relative.
const (
	Second int64 = 1
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
	Month        = 28 * Day
	Year         = 365 * Day
)

// Units maps a unit literal (e.g. "h", "hours") to its multiplier in seconds.
// Literals are case-sensitive.
type Units map[string]int64

var defaultUnits = Units{
	"s": Second, "seconds": Second,
	"m": Minute, "minutes": Minute,
	"h": Hour, "hours": Hour,
	"d": Day, "days": Day,
	"mo": Month, "months": Month,
	"y": Year, "years": Year,
}

// DefaultUnits returns a copy of the built-in unit table.
func DefaultUnits() Units {
	return defaultUnits.clone()
}

func (u Units) clone() Units {
	c := make(Units, len(u))
	for k, v := range u {
		c[k] = v
	}
	return c
}

// Lookup resolves a literal by exact match.
func (u Units) Lookup(literal string) (int64, bool) {
	m, ok := u[literal]
	return m, ok
}

// Literals returns every literal bound to the multiplier, shortest first.
func (u Units) Literals(multiplier int64) []string {
	literals := lo.Keys(lo.PickByValues(u, []int64{multiplier}))
	slices.SortFunc(literals, func(a, b string) int {
		if n := cmp.Compare(len(a), len(b)); n != 0 {
			return n
		}
		return cmp.Compare(a, b)
	})
	return literals
}

// Merge returns a new table holding u and extra. Redefining a literal
// with a different multiplier is an error.
func (u Units) Merge(extra Units) (Units, error) {
	merged := u.clone()
	for literal, m := range extra {
		if cur, ok := merged[literal]; ok && cur != m {
			return nil, fmt.Errorf("%w: %q is %d, not %d", ErrUnitConflict, literal, cur, m)
		}
		merged[literal] = m
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate checks that every literal is a non-empty run of ASCII letters
// and that every multiplier is positive.
func (u Units) Validate() error {
	for literal, m := range u {
		if !isUnitLiteral(literal) {
			return fmt.Errorf("%w: literal %q must be ASCII letters", ErrInvalidUnit, literal)
		}
		if m <= 0 {
			return fmt.Errorf("%w: multiplier of %q must be positive", ErrInvalidUnit, literal)
		}
	}
	return nil
}

func isUnitLiteral(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}
