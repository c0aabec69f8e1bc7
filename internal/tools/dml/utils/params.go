package utils

import (
	"bytes"
	"encoding/json"
)

// SetValues is a column-to-value map that keeps the integer/float distinction
// of incoming JSON numbers. Plain decoding widens every number to float64, so
// an integral value like 34 would bind as FLOAT64 instead of INT64.
type SetValues map[string]any

func (s *SetValues) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	*s = raw
	return nil
}
