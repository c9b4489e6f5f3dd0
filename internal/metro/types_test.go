package metro

import (
	"errors"
	"testing"
)

func TestParseStation(t *testing.T) {
	st, err := parseStation("V 0042 04 0 Les Halles")
	if err != nil {
		t.Fatalf("parseStation returned error: %v", err)
	}
	if st.ID != 42 {
		t.Errorf("ID = %d, want 42", st.ID)
	}
	if st.Line != "4" {
		t.Errorf("Line = %q, want %q", st.Line, "4")
	}
	if st.Terminus {
		t.Errorf("Terminus = true, want false")
	}
	if st.Name != "Les Halles" {
		t.Errorf("Name = %q, want %q", st.Name, "Les Halles")
	}
}

func TestParseStationTerminus(t *testing.T) {
	st, err := parseStation("V 7 1 1 Château de Vincennes")
	if err != nil {
		t.Fatalf("parseStation returned error: %v", err)
	}
	if !st.Terminus {
		t.Errorf("Terminus = false, want true")
	}
	if st.Name != "Château de Vincennes" {
		t.Errorf("Name = %q, want %q", st.Name, "Château de Vincennes")
	}
}

func TestParseStationLineNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"04", "4"},
		{"10", "10"},
		{"007", "7"},
		{"3b", "3b"},
		{"0", ""},
	}
	for _, tt := range tests {
		st, err := parseStation("V 1 " + tt.raw + " 0 Nation")
		if err != nil {
			t.Fatalf("parseStation(line %q) returned error: %v", tt.raw, err)
		}
		if st.Line != tt.want {
			t.Errorf("line %q normalized to %q, want %q", tt.raw, st.Line, tt.want)
		}
	}
}

func TestParseStationMalformed(t *testing.T) {
	records := []string{
		"V 1 4 0",
		"V",
		"V abc 4 0 Nation",
		"V -1 4 0 Nation",
		"Version 2 of the file format",
	}
	for _, record := range records {
		if _, err := parseStation(record); !errors.Is(err, ErrBadRecord) {
			t.Errorf("parseStation(%q) error = %v, want ErrBadRecord", record, err)
		}
	}
}

func TestParseTrip(t *testing.T) {
	tr, err := parseTrip("E 0042 0069 420")
	if err != nil {
		t.Fatalf("parseTrip returned error: %v", err)
	}
	if tr.A != 42 || tr.B != 69 || tr.Seconds != 420 {
		t.Errorf("trip = %+v, want {A:42 B:69 Seconds:420}", tr)
	}
}

func TestParseTripMalformed(t *testing.T) {
	records := []string{
		"E 1 2",
		"E",
		"E 1 2 abc",
		"E 1 2 -5",
		"E x 2 60",
		"E 1 -2 60",
		"E 1 2 60 extra",
	}
	for _, record := range records {
		if _, err := parseTrip(record); !errors.Is(err, ErrBadRecord) {
			t.Errorf("parseTrip(%q) error = %v, want ErrBadRecord", record, err)
		}
	}
}
