package period

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalText encodes the period as String does.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses text with the default units in lenient mode.
func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalYAML accepts a duration string ("1h 30m") or a plain integer
// of seconds.
func (p *Period) UnmarshalYAML(unmarshal func(any) error) error {
	var seconds int64
	if err := unmarshal(&seconds); err == nil {
		*p = FromSeconds(seconds)
		return nil
	}
	var text string
	if err := unmarshal(&text); err != nil {
		return fmt.Errorf("period must be a string or an integer: %w", err)
	}
	return p.UnmarshalText([]byte(text))
}

type periodJSON struct {
	Total   int64  `json:"total"`
	Days    int64  `json:"days"`
	Hours   int64  `json:"hours"`
	Minutes int64  `json:"minutes"`
	Seconds int64  `json:"seconds"`
	Text    string `json:"text"`
}

// MarshalJSON writes the total along with its normalized components.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(periodJSON{
		Total:   p.total,
		Days:    p.days,
		Hours:   p.hours,
		Minutes: p.minutes,
		Seconds: p.seconds,
		Text:    p.String(),
	})
}

// UnmarshalJSON accepts the object written by MarshalJSON, a duration
// string or a number of seconds. Only the total of an object is used.
func (p *Period) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		return fmt.Errorf("period: empty json")
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		return p.UnmarshalText([]byte(text))
	case data[0] == '{':
		var v periodJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = FromSeconds(v.Total)
		return nil
	default:
		var seconds int64
		if err := json.Unmarshal(data, &seconds); err != nil {
			return err
		}
		*p = FromSeconds(seconds)
		return nil
	}
}
