// Package timex holds time helpers shared by the config loaders.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Duration is a time.Duration that config files may spell either as a
// Go duration string ("3s", "1m30s") or as integer nanoseconds.
type Duration struct {
	time.Duration
}

var errBadDuration = errors.New("duration must be a string or an integer")

func parse(v any) (time.Duration, error) {
	switch x := v.(type) {
	case string:
		return time.ParseDuration(x)
	case float64:
		return time.Duration(x), nil
	case int:
		return time.Duration(x), nil
	case int64:
		return time.Duration(x), nil
	default:
		return 0, fmt.Errorf("%w, got %T", errBadDuration, v)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	dur, err := parse(v)
	if err != nil {
		return err
	}
	d.Duration = dur
	return nil
}

// UnmarshalYAML implements yaml.v2's Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	dur, err := parse(v)
	if err != nil {
		return err
	}
	d.Duration = dur
	return nil
}
