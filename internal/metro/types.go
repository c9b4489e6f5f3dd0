package metro

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadRecord marks a station or trip record that cannot be parsed.
// Network files have no recovery path for corrupt records, so loading
// aborts on the first one.
var ErrBadRecord = errors.New("malformed network record")

// Station is one node of the network. Interchange complexes appear as one
// station per line, connected to each other by ordinary trips, so a station
// always belongs to exactly one line.
type Station struct {
	ID       int
	Line     string
	Terminus bool
	Name     string
}

// Trip is an undirected edge between two stations weighted by travel time
// in seconds. Parallel trips between the same pair are allowed and all of
// them take part in the search.
type Trip struct {
	A       int
	B       int
	Seconds int
}

// Edge is a trip seen from one of its endpoints.
type Edge struct {
	To      int
	Seconds int
}

// parseStation parses a "V <id> <line> <terminus> <name>" record. The line
// identifier drops leading zeros ("04" and "4" are the same line, which
// matters for transfer detection); the name is the remainder of the record
// and may contain spaces.
func parseStation(record string) (Station, error) {
	fields := strings.SplitN(strings.TrimPrefix(record, "V "), " ", 4)
	if len(fields) != 4 {
		return Station{}, fmt.Errorf("%w: station record %q needs id, line, terminus flag and name", ErrBadRecord, record)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 0 {
		return Station{}, fmt.Errorf("%w: station id %q is not a non-negative integer", ErrBadRecord, fields[0])
	}
	return Station{
		ID:       id,
		Line:     strings.TrimLeft(fields[1], "0"),
		Terminus: fields[2] == "1",
		Name:     fields[3],
	}, nil
}

// parseTrip parses an "E <a> <b> <seconds>" record.
func parseTrip(record string) (Trip, error) {
	fields := strings.SplitN(strings.TrimPrefix(record, "E "), " ", 3)
	if len(fields) != 3 {
		return Trip{}, fmt.Errorf("%w: trip record %q needs two station ids and a travel time", ErrBadRecord, record)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil || a < 0 {
		return Trip{}, fmt.Errorf("%w: trip station id %q is not a non-negative integer", ErrBadRecord, fields[0])
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil || b < 0 {
		return Trip{}, fmt.Errorf("%w: trip station id %q is not a non-negative integer", ErrBadRecord, fields[1])
	}
	secs, err := strconv.Atoi(fields[2])
	if err != nil || secs < 0 {
		return Trip{}, fmt.Errorf("%w: travel time %q is not a non-negative integer", ErrBadRecord, fields[2])
	}
	return Trip{A: a, B: b, Seconds: secs}, nil
}
