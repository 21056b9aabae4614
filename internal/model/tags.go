package model

import (
	"encoding/json"
	"strings"
)

// Tags is an ordered sequence of tag strings. It accepts either a JSON
// array of strings or a single comma-delimited string when
// unmarshaling, so both input shapes land in the same representation.
type Tags []string

// UnmarshalJSON splits a delimited-string input into elements; array
// input is taken as-is. Elements are not trimmed here, Normalize does
// that before persistence.
func (t *Tags) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = strings.Split(s, ",")
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

// Normalize trims every element and drops empty ones, preserving
// order. Duplicates are kept. Normalizing an already-normalized
// sequence yields an equal sequence.
func (t Tags) Normalize() Tags {
	out := make(Tags, 0, len(t))
	for _, tag := range t {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}
