package period

import (
	"errors"
	"testing"
)

func TestParseErrorUnwrap(t *testing.T) {
	tests := []struct {
		kind Kind
		want error
	}{
		{kind: UnknownUnit, want: ErrUnknownUnit},
		{kind: NumericOverflow, want: ErrNumericOverflow},
		{kind: Kind(0), want: ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &ParseError{Kind: tt.kind, Literal: "x", Pos: 1}
			if !errors.Is(err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.want)
			}
		})
	}
}
