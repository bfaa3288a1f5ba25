package period

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Accumulator
	}{
		{
			name:  "empty string",
			input: "",
			want:  Accumulator{},
		},
		{
			name:  "no digits",
			input: "hours and minutes",
			want:  Accumulator{},
		},
		{
			name:  "bare number is minutes",
			input: "90",
			want:  Accumulator{Minute: 90},
		},
		{
			name:  "same unit accumulates",
			input: "1h 2h",
			want:  Accumulator{Hour: 3},
		},
		{
			name:  "short and long literals share a multiplier",
			input: "1h 2hours 3m 4minutes",
			want:  Accumulator{Hour: 3, Minute: 7},
		},
		{
			name:  "no separators",
			input: "1d2h3m4s",
			want:  Accumulator{Day: 1, Hour: 2, Minute: 3, Second: 4},
		},
		{
			name:  "months and years",
			input: "1y 2mo",
			want:  Accumulator{Year: 1, Month: 2},
		},
		{
			name:  "unknown unit is dropped",
			input: "1h 5x",
			want:  Accumulator{Hour: 1},
		},
		{
			name:  "literal is case-sensitive",
			input: "1H 2m",
			want:  Accumulator{Minute: 2},
		},
		{
			name:  "punctuation between tokens",
			input: "1h, 30m; 15s!",
			want:  Accumulator{Hour: 1, Minute: 30, Second: 15},
		},
		{
			name:  "trailing bare number",
			input: "1h 5",
			want:  Accumulator{Hour: 1, Minute: 5},
		},
		{
			name:  "zero values are kept",
			input: "0s",
			want:  Accumulator{Second: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewScanner(tt.input, DefaultUnits()).Scan()
			if err != nil {
				t.Fatalf("Scan(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScanStrict(t *testing.T) {
	_, err := NewScanner("1h 5x", DefaultUnits(), WithMode(Strict)).Scan()
	if !IsUnknownUnit(err) {
		t.Fatalf("Scan() error = %v, want %v", err, ErrUnknownUnit)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Scan() error = %T, want *ParseError", err)
	}
	if perr.Kind != UnknownUnit || perr.Literal != "x" || perr.Pos != 4 {
		t.Errorf("Scan() error = %+v, want {UnknownUnit x 4}", perr)
	}
}

func TestScanAfterError(t *testing.T) {
	s := NewScanner("1h 5x 2h", DefaultUnits(), WithMode(Strict))
	_, first := s.Scan()
	if !IsUnknownUnit(first) {
		t.Fatalf("Scan() error = %v, want %v", first, ErrUnknownUnit)
	}

	acc, err := s.Scan()
	if err != first {
		t.Errorf("second Scan() error = %v, want %v", err, first)
	}
	if acc != nil {
		t.Errorf("second Scan() = %v, want nil", acc)
	}
}

func TestScanOverflow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
		pos     int
	}{
		{
			name:    "number does not fit",
			input:   "1h 99999999999999999999s",
			literal: "99999999999999999999s",
			pos:     3,
		},
		{
			name:    "product does not fit",
			input:   "9223372036854775807y",
			literal: "9223372036854775807y",
			pos:     0,
		},
		{
			name:    "sum does not fit",
			input:   "9223372036854775807s 1s",
			literal: "1s",
			pos:     21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []Mode{Lenient, Strict} {
				_, err := NewScanner(tt.input, DefaultUnits(), WithMode(mode)).Scan()
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("Scan(%q) [%s] error = %v, want *ParseError", tt.input, mode, err)
				}
				if perr.Kind != NumericOverflow || perr.Literal != tt.literal || perr.Pos != tt.pos {
					t.Errorf("Scan(%q) [%s] error = %+v, want {NumericOverflow %s %d}", tt.input, mode, perr, tt.literal, tt.pos)
				}
			}
		})
	}
}

func TestScanCustomUnits(t *testing.T) {
	units, err := DefaultUnits().Merge(Units{"w": 7 * Day, "weeks": 7 * Day})
	if err != nil {
		t.Fatalf("Merge() unexpected error: %v", err)
	}

	got, err := NewScanner("2w 1weeks 3", units, WithDefaultMultiplier(Second)).Scan()
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	want := Accumulator{7 * Day: 3, Second: 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestAccumulator(t *testing.T) {
	acc := Accumulator{Second: 4, Day: 1, Minute: 3, Hour: 2}

	want := []Entry{{Day, 1}, {Hour, 2}, {Minute, 3}, {Second, 4}}
	if got := acc.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}

	total, err := acc.Total()
	if err != nil {
		t.Fatalf("Total() unexpected error: %v", err)
	}
	if total != 93784 {
		t.Errorf("Total() = %d, want 93784", total)
	}

	if _, err := (Accumulator{Year: math.MaxInt64}).Total(); !errors.Is(err, ErrNumericOverflow) {
		t.Errorf("Total() error = %v, want %v", err, ErrNumericOverflow)
	}
}
