// Package calendar turns a contribution calendar (weeks of days) into the
// flat, ordered list of cells the game builds its formation from.
package calendar

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// EmptyColor is the calendar background colour. Cells painted with it are
// scenery: they move with the formation but can never be destroyed.
const EmptyColor = "#EFF2F5"

// Day is a single contribution day as delivered by the data source.
type Day struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"contributionCount" yaml:"contributionCount"`
	Color string `json:"color" yaml:"color"`
}

// Week is a column of up to seven days.
type Week struct {
	Days []Day `json:"contributionDays" yaml:"contributionDays"`
}

// Cell is one flattened calendar square.
type Cell struct {
	Week  int    // column index
	Day   int    // row index within the week
	Count int    // contributions that day
	Color string // display colour, EmptyColor for zero-count days
	Date  string
}

// DataFormatError reports calendar input that does not match the expected shape.
type DataFormatError struct {
	Reason string
}

func (e *DataFormatError) Error() string {
	return "calendar: malformed data: " + e.Reason
}

func formatErr(format string, args ...any) error {
	return &DataFormatError{Reason: fmt.Sprintf(format, args...)}
}

// Flatten converts weeks into cells ordered week-major, day-minor.
// A day with zero contributions is recoloured to EmptyColor whatever
// colour the source reported.
func Flatten(weeks []Week) ([]Cell, error) {
	if len(weeks) == 0 {
		return nil, formatErr("no weeks")
	}

	cells := make([]Cell, 0, len(weeks)*7)
	for w, week := range weeks {
		for d, day := range week.Days {
			if day.Count < 0 {
				return nil, formatErr("week %d day %d: negative count %d", w, d, day.Count)
			}

			color := EmptyColor
			if day.Count > 0 {
				c, err := NormalizeColor(day.Color)
				if err != nil {
					return nil, formatErr("week %d day %d: %v", w, d, err)
				}
				color = c
			}

			cells = append(cells, Cell{
				Week:  w,
				Day:   d,
				Count: day.Count,
				Color: color,
				Date:  day.Date,
			})
		}
	}
	return cells, nil
}

// NormalizeColor validates a "#rrggbb" colour and returns it unchanged.
func NormalizeColor(s string) (string, error) {
	if _, err := colorful.Hex(s); err != nil {
		return "", fmt.Errorf("invalid colour %q", s)
	}
	return s, nil
}

// IsEmptyColor reports whether color is the calendar background colour.
func IsEmptyColor(color string) bool {
	return strings.EqualFold(color, EmptyColor)
}

// IsDestructible reports whether a cell with the given colour can be shot.
func IsDestructible(color string) bool {
	return !IsEmptyColor(color)
}

// Summary holds aggregate numbers about a flattened calendar.
type Summary struct {
	Weeks        int // number of columns
	ActiveWeeks  int // columns with at least one contribution
	Days         int
	Total        int // sum of all counts
	Destructible int // cells that can be shot
	BusiestDay   string
	BusiestCount int
}

// Stats computes a Summary for cells.
func Stats(cells []Cell) Summary {
	var s Summary
	active := make(map[int]bool)
	weeks := make(map[int]bool)
	for _, c := range cells {
		weeks[c.Week] = true
		s.Days++
		s.Total += c.Count
		if IsDestructible(c.Color) {
			s.Destructible++
		}
		if c.Count > 0 {
			active[c.Week] = true
		}
		if c.Count > s.BusiestCount {
			s.BusiestCount = c.Count
			s.BusiestDay = c.Date
		}
	}
	s.Weeks = len(weeks)
	s.ActiveWeeks = len(active)
	return s
}
