package period

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultUnits(t *testing.T) {
	want := map[string]int64{
		"s": 1, "seconds": 1,
		"m": 60, "minutes": 60,
		"h": 3600, "hours": 3600,
		"d": 86400, "days": 86400,
		"mo": 2419200, "months": 2419200,
		"y": 31536000, "years": 31536000,
	}
	got := DefaultUnits()
	if !reflect.DeepEqual(map[string]int64(got), want) {
		t.Errorf("DefaultUnits() = %v, want %v", got, want)
	}

	// callers get their own copy
	got["x"] = 1
	if _, ok := DefaultUnits().Lookup("x"); ok {
		t.Errorf("DefaultUnits() shares state between calls")
	}
}

func TestUnitsMerge(t *testing.T) {
	tests := []struct {
		name    string
		extra   Units
		wantErr error
	}{
		{
			name:  "new literals",
			extra: Units{"w": 604800, "weeks": 604800},
		},
		{
			name:  "same binding is accepted",
			extra: Units{"h": Hour},
		},
		{
			name:    "rebinding a literal",
			extra:   Units{"m": Month},
			wantErr: ErrUnitConflict,
		},
		{
			name:    "non-letter literal",
			extra:   Units{"µs": 1},
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "zero multiplier",
			extra:   Units{"never": 0},
			wantErr: ErrInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := DefaultUnits().Merge(tt.extra)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Merge() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Merge() unexpected error: %v", err)
			}
			for literal, m := range tt.extra {
				if got, ok := merged.Lookup(literal); !ok || got != m {
					t.Errorf("Lookup(%q) = %d, %v, want %d", literal, got, ok, m)
				}
			}
		})
	}
}

func TestUnitsLiterals(t *testing.T) {
	tests := []struct {
		multiplier int64
		want       []string
	}{
		{Second, []string{"s", "seconds"}},
		{Month, []string{"mo", "months"}},
		{42, []string{}},
	}

	for _, tt := range tests {
		if got := DefaultUnits().Literals(tt.multiplier); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Literals(%d) = %v, want %v", tt.multiplier, got, tt.want)
		}
	}
}
