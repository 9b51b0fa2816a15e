package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var errInvalidNumber = errors.New("invalid number")

// FlexInt accepts a JSON number or a numeric string. Null and "" leave it
// unset.
type FlexInt struct {
	Value int64
	Set   bool
}

func (v *FlexInt) UnmarshalJSON(data []byte) error {
	raw, ok, err := numberText(data)
	if err != nil || !ok {
		return err
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}
	v.Value, v.Set = parsed, true
	return nil
}

// FlexFloat accepts a JSON number or a numeric string. Null and "" leave it
// unset.
type FlexFloat struct {
	Value float64
	Set   bool
}

func (v *FlexFloat) UnmarshalJSON(data []byte) error {
	raw, ok, err := numberText(data)
	if err != nil || !ok {
		return err
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}
	v.Value, v.Set = parsed, true
	return nil
}

func (v FlexFloat) Ptr() *float64 {
	if !v.Set {
		return nil
	}
	value := v.Value
	return &value
}

func (v FlexInt) Ptr() *int64 {
	if !v.Set {
		return nil
	}
	value := v.Value
	return &value
}

func numberText(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return "", false, err
		}
		text = strings.TrimSpace(text)
		return text, text != "", nil
	}
	return string(data), true, nil
}

// ParseQueryInt parses an optional query parameter.
func ParseQueryInt(value string) (FlexInt, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return FlexInt{}, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return FlexInt{}, fmt.Errorf("%w: %q", errInvalidNumber, value)
	}
	return FlexInt{Value: parsed, Set: true}, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp accepts RFC 3339 or a bare local date/time, read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
