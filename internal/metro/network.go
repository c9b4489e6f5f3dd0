package metro

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrBadNetwork marks structural problems found while assembling a network:
// station ids that are not a dense 0-based range, or trips referencing
// stations that do not exist.
var ErrBadNetwork = errors.New("invalid network")

// Network owns every station and trip of one metro system. Stations sit at
// the slice index equal to their id; trips keep the order they were
// declared in. A Network never changes after construction, so any number of
// route queries may run against it concurrently.
type Network struct {
	Stations []Station
	Trips    []Trip
}

// LoadNetwork builds a Network from raw description lines. Lines starting
// with "V" declare stations and lines starting with "E" declare trips;
// anything else, blank lines included, is skipped. The first malformed
// record aborts the load.
func LoadNetwork(records []string) (*Network, error) {
	var stations []Station
	var trips []Trip
	for i, record := range records {
		switch {
		case strings.HasPrefix(record, "V"):
			st, err := parseStation(record)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			stations = append(stations, st)
		case strings.HasPrefix(record, "E"):
			tr, err := parseTrip(record)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			trips = append(trips, tr)
		}
	}
	return NewNetwork(stations, trips)
}

// NewNetwork validates already-parsed stations and trips and assembles the
// owning Network. Station ids must form a contiguous range starting at 0,
// in any declaration order, and every trip endpoint must name an existing
// station.
func NewNetwork(stations []Station, trips []Trip) (*Network, error) {
	ordered := make([]Station, len(stations))
	seen := make([]bool, len(stations))
	for _, st := range stations {
		if st.ID < 0 || st.ID >= len(stations) {
			return nil, fmt.Errorf("%w: station id %d does not fit a dense 0-based range of %d stations", ErrBadNetwork, st.ID, len(stations))
		}
		if seen[st.ID] {
			return nil, fmt.Errorf("%w: duplicate station id %d", ErrBadNetwork, st.ID)
		}
		seen[st.ID] = true
		ordered[st.ID] = st
	}
	for _, tr := range trips {
		if tr.A < 0 || tr.A >= len(ordered) {
			return nil, fmt.Errorf("%w: trip references unknown station %d", ErrBadNetwork, tr.A)
		}
		if tr.B < 0 || tr.B >= len(ordered) {
			return nil, fmt.Errorf("%w: trip references unknown station %d", ErrBadNetwork, tr.B)
		}
	}
	return &Network{Stations: ordered, Trips: trips}, nil
}

// LoadFile reads a network description file from disk.
func LoadFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network file: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	n, err := LoadNetwork(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Neighbors returns every trip incident to id as outgoing edges, in trip
// declaration order and without deduplication. The scan is linear; networks
// are small enough that an adjacency index has never been worth it.
func (n *Network) Neighbors(id int) []Edge {
	var edges []Edge
	for _, tr := range n.Trips {
		switch id {
		case tr.A:
			edges = append(edges, Edge{To: tr.B, Seconds: tr.Seconds})
		case tr.B:
			edges = append(edges, Edge{To: tr.A, Seconds: tr.Seconds})
		}
	}
	return edges
}

// FindByName returns the ids of every station whose name matches exactly,
// in id order. Interchange complexes yield one id per line; callers decide
// between the candidates, usually by trying them all.
func (n *Network) FindByName(name string) []int {
	var ids []int
	for _, st := range n.Stations {
		if st.Name == name {
			ids = append(ids, st.ID)
		}
	}
	return ids
}
