package calendar

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFlattenOrderAndIndices(t *testing.T) {
	weeks := []Week{
		{Days: []Day{
			{Date: "2024-01-07", Count: 1, Color: "#9be9a8"},
			{Date: "2024-01-08", Count: 0, Color: "#ebedf0"},
		}},
		{Days: []Day{
			{Date: "2024-01-14", Count: 7, Color: "#216e39"},
		}},
	}

	cells, err := Flatten(weeks)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}

	expected := []Cell{
		{Week: 0, Day: 0, Count: 1, Color: "#9be9a8", Date: "2024-01-07"},
		{Week: 0, Day: 1, Count: 0, Color: EmptyColor, Date: "2024-01-08"},
		{Week: 1, Day: 0, Count: 7, Color: "#216e39", Date: "2024-01-14"},
	}
	for i, want := range expected {
		if cells[i] != want {
			t.Errorf("cell %d = %+v, expected %+v", i, cells[i], want)
		}
	}
}

func TestFlattenZeroCountAlwaysEmpty(t *testing.T) {
	// The source colour of a zero-count day is ignored, even a bright one.
	for _, src := range []string{"#40c463", "#ebedf0", "", "not-a-colour"} {
		cells, err := Flatten([]Week{{Days: []Day{{Count: 0, Color: src}}}})
		if err != nil {
			t.Fatalf("Flatten(%q) returned error: %v", src, err)
		}
		if cells[0].Color != EmptyColor {
			t.Errorf("zero-count day with colour %q became %q, expected %q", src, cells[0].Color, EmptyColor)
		}
		if IsDestructible(cells[0].Color) {
			t.Errorf("zero-count day with colour %q must not be destructible", src)
		}
	}
}

func TestFlattenErrors(t *testing.T) {
	tests := []struct {
		name  string
		weeks []Week
	}{
		{"nil", nil},
		{"empty", []Week{}},
		{"negative count", []Week{{Days: []Day{{Count: -1, Color: "#40c463"}}}}},
		{"bad colour", []Week{{Days: []Day{{Count: 2, Color: "green"}}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Flatten(tc.weeks)
			var dfe *DataFormatError
			if !errors.As(err, &dfe) {
				t.Fatalf("expected *DataFormatError, got %v", err)
			}
		})
	}
}

func TestIsEmptyColor(t *testing.T) {
	tests := []struct {
		color string
		empty bool
	}{
		{"#EFF2F5", true},
		{"#eff2f5", true},
		{"#Eff2F5", true},
		{"#ebedf0", false},
		{"#40c463", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsEmptyColor(tc.color); got != tc.empty {
			t.Errorf("IsEmptyColor(%q) = %v, expected %v", tc.color, got, tc.empty)
		}
		if got := IsDestructible(tc.color); got == tc.empty {
			t.Errorf("IsDestructible(%q) = %v, expected %v", tc.color, got, !tc.empty)
		}
	}
}

func TestDecode(t *testing.T) {
	input := `[
		{"contributionDays": [
			{"date": "2024-03-03", "contributionCount": 5, "color": "#40c463"},
			{"date": "2024-03-04", "contributionCount": 0, "color": "#ebedf0"}
		]},
		{"contributionDays": []}
	]`

	weeks, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weeks))
	}
	if len(weeks[0].Days) != 2 || len(weeks[1].Days) != 0 {
		t.Fatalf("unexpected day counts: %d, %d", len(weeks[0].Days), len(weeks[1].Days))
	}
	if d := weeks[0].Days[0]; d.Count != 5 || d.Color != "#40c463" || d.Date != "2024-03-03" {
		t.Errorf("unexpected first day %+v", d)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `hello`},
		{"object", `{"weeks": []}`},
		{"null", `null`},
		{"empty array", `[]`},
		{"array of arrays", `[[1, 2], [3]]`},
		{"missing days", `[{"days": []}]`},
		{"null week", `[null]`},
		{"null day", `[{"contributionDays": [null]}]`},
		{"missing count", `[{"contributionDays": [{"color": "#40c463"}]}]`},
		{"string count", `[{"contributionDays": [{"contributionCount": "3", "color": "#40c463"}]}]`},
		{"fractional count", `[{"contributionDays": [{"contributionCount": 1.5, "color": "#40c463"}]}]`},
		{"negative count", `[{"contributionDays": [{"contributionCount": -2, "color": "#40c463"}]}]`},
		{"missing colour", `[{"contributionDays": [{"contributionCount": 2}]}]`},
		{"bad colour", `[{"contributionDays": [{"contributionCount": 2, "color": "lime"}]}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.input))
			var dfe *DataFormatError
			if !errors.As(err, &dfe) {
				t.Fatalf("expected *DataFormatError, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), "calendar: malformed data:") {
				t.Errorf("unexpected error text %q", err.Error())
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	input := []byte(`
- contributionDays:
    - date: "2024-03-03"
      contributionCount: 4
      color: "#30a14e"
    - date: "2024-03-04"
      contributionCount: 0
      color: "#ebedf0"
`)

	weeks, err := DecodeYAML(input)
	if err != nil {
		t.Fatalf("DecodeYAML returned error: %v", err)
	}
	cells, err := Flatten(weeks)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(cells) != 2 || cells[0].Count != 4 || cells[1].Color != EmptyColor {
		t.Errorf("unexpected cells %+v", cells)
	}

	if _, err := DecodeYAML([]byte("[]")); err == nil {
		t.Error("expected error for empty YAML calendar")
	}
}

func TestDecodeYAMLMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing count", "- contributionDays:\n  - date: \"2024-01-01\"\n    color: \"#40c463\"\n"},
		{"missing days", "- {}\n"},
		{"missing color", "- contributionDays:\n  - contributionCount: 1\n"},
		{"bad colour", "- contributionDays:\n  - contributionCount: 3\n    color: not-a-colour\n"},
		{"negative count", "- contributionDays:\n  - contributionCount: -1\n    color: \"#40c463\"\n"},
		{"fractional count", "- contributionDays:\n  - contributionCount: 1.5\n    color: \"#40c463\"\n"},
		{"not a list", "contributionDays: []\n"},
		{"null day", "- contributionDays:\n  - null\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeYAML([]byte(tc.input))
			var fe *DataFormatError
			if !errors.As(err, &fe) {
				t.Errorf("expected *DataFormatError, got %v", err)
			}
		})
	}
}

func TestEncodeRoundTripsThroughDecode(t *testing.T) {
	weeks := []Week{{Days: []Day{{Date: "2024-01-01", Count: 2, Color: "#9be9a8"}}}}

	var buf bytes.Buffer
	if err := Encode(&buf, weeks); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(buf.String(), `"contributionCount": 2`) {
		t.Errorf("encoded output should use contract field names: %s", buf.String())
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got[0].Days[0] != weeks[0].Days[0] {
		t.Errorf("got %+v, expected %+v", got[0].Days[0], weeks[0].Days[0])
	}
}

func TestEncodeYAMLIsReadable(t *testing.T) {
	weeks := []Week{{Days: []Day{
		{Date: "2024-01-01", Count: 2, Color: "#9be9a8"},
		{Date: "2024-01-02", Count: 0, Color: EmptyColor},
	}}}

	var buf bytes.Buffer
	if err := EncodeYAML(&buf, weeks); err != nil {
		t.Fatalf("EncodeYAML returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "contributionDays:") {
		t.Errorf("encoded output should use contract field names: %s", buf.String())
	}

	got, err := DecodeYAML(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeYAML returned error: %v", err)
	}
	if len(got) != 1 || len(got[0].Days) != 2 || got[0].Days[1] != weeks[0].Days[1] {
		t.Errorf("got %+v, expected %+v", got, weeks)
	}
}

func TestStats(t *testing.T) {
	cells := []Cell{
		{Week: 0, Day: 0, Count: 3, Color: "#40c463", Date: "a"},
		{Week: 0, Day: 1, Count: 0, Color: EmptyColor, Date: "b"},
		{Week: 1, Day: 0, Count: 0, Color: EmptyColor, Date: "c"},
		{Week: 2, Day: 0, Count: 9, Color: "#216e39", Date: "d"},
	}

	s := Stats(cells)
	if s.Weeks != 3 || s.ActiveWeeks != 2 || s.Days != 4 {
		t.Errorf("unexpected shape stats %+v", s)
	}
	if s.Total != 12 || s.Destructible != 2 {
		t.Errorf("unexpected totals %+v", s)
	}
	if s.BusiestDay != "d" || s.BusiestCount != 9 {
		t.Errorf("unexpected busiest day %+v", s)
	}
}
