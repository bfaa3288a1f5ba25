// Package period parses human-readable duration strings such as "2h 30m 15s"
// or "1mo 2d" into a number of seconds, and renders them back as text or as
// an SQL interval.
//
// A bare number without a unit counts as minutes. Months are 28 days and
// years are 365 days; nothing here is calendar-aware.
package period

import (
	"cmp"
	"fmt"
	"math"
	"strings"
	"time"
)

// Period is an immutable span of whole seconds, normalized into days,
// hours, minutes and seconds when it is built.
type Period struct {
	total   int64
	days    int64
	hours   int64
	minutes int64
	seconds int64
}

// Components describes a period by its parts. Zero fields contribute nothing.
type Components struct {
	Seconds int64
	Minutes int64
	Hours   int64
	Days    int64
}

// New builds a Period from explicit components. The components must add
// up to a total that fits in int64; use NewChecked when they come from
// untrusted input.
func New(c Components) Period {
	return FromSeconds(c.Seconds + c.Minutes*Minute + c.Hours*Hour + c.Days*Day)
}

// NewChecked is like New but returns ErrNumericOverflow instead of wrapping.
func NewChecked(c Components) (Period, error) {
	total := c.Seconds
	for _, part := range []struct{ multiplier, value int64 }{
		{Minute, c.Minutes},
		{Hour, c.Hours},
		{Day, c.Days},
	} {
		n, ok := mulInt64(part.multiplier, part.value)
		if !ok {
			return Period{}, fmt.Errorf("new period %+v: %w", c, ErrNumericOverflow)
		}
		if total, ok = addInt64(total, n); !ok {
			return Period{}, fmt.Errorf("new period %+v: %w", c, ErrNumericOverflow)
		}
	}
	return FromSeconds(total), nil
}

// Add returns the sum of two periods, or ErrNumericOverflow if it does not
// fit in int64.
func Add(a, b Period) (Period, error) {
	total, ok := addInt64(a.total, b.total)
	if !ok {
		return Period{}, fmt.Errorf("add %d and %d seconds: %w", a.total, b.total, ErrNumericOverflow)
	}
	return FromSeconds(total), nil
}

// FromSeconds builds a Period holding exactly total seconds.
func FromSeconds(total int64) Period {
	p := Period{total: total}
	p.normalize()
	return p
}

// FromStd converts a time.Duration, dropping any sub-second remainder.
func FromStd(d time.Duration) Period {
	return FromSeconds(int64(d / time.Second))
}

// FromString parses text and builds a Period from the result.
func FromString(text string, opts ...Option) (Period, error) {
	return ParsePeriod(text, opts...)
}

// Parse returns the number of seconds described by text.
func Parse(text string, opts ...Option) (int64, error) {
	acc, err := NewScanner(text, nil, opts...).Scan()
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", text, err)
	}
	return acc.Total()
}

// ParsePeriod is FromSeconds(Parse(text)).
func ParsePeriod(text string, opts ...Option) (Period, error) {
	total, err := Parse(text, opts...)
	if err != nil {
		return Period{}, err
	}
	return FromSeconds(total), nil
}

// MustParse is like ParsePeriod but panics on error.
func MustParse(text string, opts ...Option) Period {
	p, err := ParsePeriod(text, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// normalize splits total with floor division so that hours, minutes and
// seconds stay within [0,24), [0,60) and [0,60) even for a negative total.
func (p *Period) normalize() {
	rest := p.total
	p.days, rest = floorDivMod(rest, Day)
	p.hours, rest = floorDivMod(rest, Hour)
	p.minutes, p.seconds = floorDivMod(rest, Minute)
}

func floorDivMod(a, b int64) (int64, int64) {
	q, r := a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// Duration returns the total number of seconds.
func (p Period) Duration() int64 { return p.total }
func (p Period) Days() int64     { return p.days }
func (p Period) Hours() int64    { return p.hours }
func (p Period) Minutes() int64  { return p.minutes }
func (p Period) Seconds() int64  { return p.seconds }
func (p Period) IsZero() bool    { return p.total == 0 }

// Std converts to a time.Duration. Values beyond its range saturate.
func (p Period) Std() time.Duration {
	const maxSeconds = int64(math.MaxInt64) / int64(time.Second)
	switch {
	case p.total > maxSeconds:
		return time.Duration(math.MaxInt64)
	case p.total < -maxSeconds:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(p.total) * time.Second
}

// String renders the non-zero components, e.g. "1h 30m". A zero period is "0s".
func (p Period) String() string {
	var parts []string
	if p.days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", p.days))
	}
	if p.hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", p.hours))
	}
	if p.minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", p.minutes))
	}
	if p.seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", p.seconds))
	}
	return strings.Join(parts, " ")
}

// SQLInterval renders the raw total as "interval <N> second".
func (p Period) SQLInterval() string {
	return fmt.Sprintf("interval %d second", p.total)
}

// Compare orders periods by their total seconds.
func (p Period) Compare(q Period) int {
	return cmp.Compare(p.total, q.total)
}

func (p Period) Equal(q Period) bool { return p.total == q.total }
func (p Period) Less(q Period) bool  { return p.total < q.total }
