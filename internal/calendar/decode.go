package calendar

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// wire types keep every field optional so missing keys can be told apart
// from zero values.
type wireDay struct {
	Date  *string  `json:"date" yaml:"date"`
	Count *float64 `json:"contributionCount" yaml:"contributionCount"`
	Color *string  `json:"color" yaml:"color"`
}

type wireWeek struct {
	Days *[]*wireDay `json:"contributionDays" yaml:"contributionDays"`
}

// Decode reads a JSON array of weeks in the contribution calendar shape:
//
//	[{"contributionDays": [{"date": "...", "contributionCount": 3, "color": "#40c463"}]}]
//
// Anything else yields a *DataFormatError.
func Decode(r io.Reader) ([]Week, error) {
	var raw []*wireWeek
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, formatErr("%v", err)
	}
	return fromWire(raw)
}

// DecodeJSON is Decode over a byte slice.
func DecodeJSON(data []byte) ([]Week, error) {
	var raw []*wireWeek
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, formatErr("%v", err)
	}
	return fromWire(raw)
}

func fromWire(raw []*wireWeek) ([]Week, error) {
	if len(raw) == 0 {
		return nil, formatErr("no weeks")
	}

	weeks := make([]Week, len(raw))
	for w, rw := range raw {
		if rw == nil || rw.Days == nil {
			return nil, formatErr("week %d: missing contributionDays", w)
		}
		days := make([]Day, len(*rw.Days))
		for d, rd := range *rw.Days {
			day, err := dayFromWire(rd)
			if err != nil {
				return nil, formatErr("week %d day %d: %v", w, d, err)
			}
			days[d] = day
		}
		weeks[w].Days = days
	}
	return weeks, nil
}

func dayFromWire(rd *wireDay) (Day, error) {
	if rd == nil {
		return Day{}, fmt.Errorf("null day")
	}
	if rd.Count == nil {
		return Day{}, fmt.Errorf("missing contributionCount")
	}
	n := *rd.Count
	if n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
		return Day{}, fmt.Errorf("contributionCount %v is not a non-negative integer", n)
	}
	if rd.Color == nil {
		return Day{}, fmt.Errorf("missing color")
	}

	day := Day{Count: int(n), Color: *rd.Color}
	if rd.Date != nil {
		day.Date = *rd.Date
	}
	if day.Count > 0 {
		if _, err := NormalizeColor(day.Color); err != nil {
			return Day{}, err
		}
	}
	return day, nil
}

// DecodeYAML parses weeks from YAML using the same field names and rules
// as the JSON contract.
func DecodeYAML(data []byte) ([]Week, error) {
	var raw []*wireWeek
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, formatErr("%v", err)
	}
	return fromWire(raw)
}

// Encode writes weeks as indented JSON in the contract shape.
func Encode(w io.Writer, weeks []Week) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(weeks); err != nil {
		return fmt.Errorf("calendar: encode: %w", err)
	}
	return nil
}

// EncodeYAML writes weeks as YAML readable by DecodeYAML.
func EncodeYAML(w io.Writer, weeks []Week) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(weeks); err != nil {
		return fmt.Errorf("calendar: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("calendar: encode: %w", err)
	}
	return nil
}
