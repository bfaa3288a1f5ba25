package period

import (
	"errors"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerSecond = 1_000_000

// IntervalValue implements pgtype.IntervalValuer. The whole total goes into
// Microseconds, mirroring SQLInterval.
func (p Period) IntervalValue() (pgtype.Interval, error) {
	micros, ok := mulInt64(p.total, microsPerSecond)
	if !ok {
		return pgtype.Interval{}, ErrNumericOverflow
	}
	return pgtype.Interval{Microseconds: micros, Valid: true}, nil
}

// ScanInterval implements pgtype.IntervalScanner. Months and days are folded
// in with the fixed Month and Day multipliers; sub-second parts are dropped.
func (p *Period) ScanInterval(v pgtype.Interval) error {
	if !v.Valid {
		return errors.New("cannot scan NULL into *period.Period")
	}

	total := v.Microseconds / microsPerSecond
	for _, part := range []struct{ n, m int64 }{
		{int64(v.Days), Day},
		{int64(v.Months), Month},
	} {
		seconds, ok := mulInt64(part.n, part.m)
		if !ok {
			return ErrNumericOverflow
		}
		if total, ok = addInt64(total, seconds); !ok {
			return ErrNumericOverflow
		}
	}

	*p = FromSeconds(total)
	return nil
}
