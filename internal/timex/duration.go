// Package timex provides a JSON-friendly wrapper around time.Duration so
// configuration files can express intervals either as strings like "15s"
// or as integer nanoseconds.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration wraps time.Duration with JSON (un)marshalling support.
type Duration struct {
	time.Duration
}

// MarshalJSON renders the duration as a string, e.g. "15s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

// UnmarshalJSON accepts either a JSON number (nanoseconds) or a JSON string
// parseable by time.ParseDuration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}
