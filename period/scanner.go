package period

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
)

// Accumulator maps a multiplier to the sum of the values scanned for it.
type Accumulator map[int64]int64

// Entry is one multiplier/value pair of an Accumulator.
type Entry struct {
	Multiplier int64
	Value      int64
}

// Entries returns the pairs ordered from the largest multiplier down.
func (a Accumulator) Entries() []Entry {
	entries := make([]Entry, 0, len(a))
	for m, v := range a {
		entries = append(entries, Entry{Multiplier: m, Value: v})
	}
	slices.SortFunc(entries, func(x, y Entry) int {
		return cmp.Compare(y.Multiplier, x.Multiplier)
	})
	return entries
}

// Total returns sum(multiplier * value) in seconds.
func (a Accumulator) Total() (int64, error) {
	var total int64
	for _, e := range a.Entries() {
		n, ok := mulInt64(e.Multiplier, e.Value)
		if !ok {
			return 0, ErrNumericOverflow
		}
		if total, ok = addInt64(total, n); !ok {
			return 0, ErrNumericOverflow
		}
	}
	return total, nil
}

// Scanner tokenizes a duration string into an Accumulator.
//
// Only digits start a token. A token is a maximal digit run followed by
// a maximal run of ASCII letters (the unit literal, possibly empty).
// Everything else between tokens is skipped.
type Scanner struct {
	src  string
	opts *options

	start   int
	current int
	total   int64
	result  Accumulator
	err     error
}

func NewScanner(src string, units Units, opts ...Option) *Scanner {
	o := defaultOptions()
	o.apply(opts...)
	if units != nil {
		o.units = units
	}
	return &Scanner{
		src:    src,
		opts:   o,
		result: Accumulator{},
	}
}

// Scan consumes the whole source. Calling it again returns the same result,
// or the same error once a scan has failed.
func (s *Scanner) Scan() (Accumulator, error) {
	if s.err != nil {
		return nil, s.err
	}
	for !s.atEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			s.err = err
			return nil, err
		}
	}
	return s.result, nil
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) scanToken() error {
	if !isDigit(s.advance()) {
		return nil
	}
	for isDigit(s.peek()) {
		s.advance()
	}
	number := s.src[s.start:s.current]

	offset := s.current
	for isAlpha(s.peek()) {
		s.advance()
	}
	literal := s.src[offset:s.current]

	value, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return s.overflow()
		}
		return err
	}

	multiplier := s.opts.bareDefault
	if literal != "" {
		m, ok := s.opts.units.Lookup(literal)
		if !ok {
			if s.opts.mode == Strict {
				return &ParseError{Kind: UnknownUnit, Literal: literal, Pos: offset}
			}
			s.opts.logger.Debug("dropped token with unknown unit", "literal", literal, "pos", offset)
			return nil
		}
		multiplier = m
	}

	return s.add(multiplier, value)
}

func (s *Scanner) add(multiplier, value int64) error {
	seconds, ok := mulInt64(multiplier, value)
	if !ok {
		return s.overflow()
	}
	total, ok := addInt64(s.total, seconds)
	if !ok {
		return s.overflow()
	}
	// the accumulated value can not overflow while the total fits
	s.result[multiplier] += value
	s.total = total

	s.opts.logger.Debug("scanned token",
		"token", s.src[s.start:s.current],
		"multiplier", multiplier,
		"value", value,
	)
	return nil
}

func (s *Scanner) overflow() error {
	return &ParseError{Kind: NumericOverflow, Literal: s.src[s.start:s.current], Pos: s.start}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 && a > math.MaxInt64/b {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}
