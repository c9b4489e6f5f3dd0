package metro

import (
	"errors"
	"fmt"
)

// ErrNoRoute reports that no sequence of trips connects the requested
// stations. Callers detect it with errors.Is.
var ErrNoRoute = errors.New("no route between stations")

// TripTime is a travel duration split into whole minutes and leftover
// seconds.
type TripTime struct {
	Minutes int
	Seconds int
}

func tripTime(seconds int) TripTime {
	return TripTime{Minutes: seconds / 60, Seconds: seconds % 60}
}

// Less orders trip times lexicographically, minutes before seconds.
func (t TripTime) Less(o TripTime) bool {
	if t.Minutes != o.Minutes {
		return t.Minutes < o.Minutes
	}
	return t.Seconds < o.Seconds
}

// Itinerary is one computed route. Path holds the full visited station id
// sequence from Start to End. Transfers are owned copies of the stations
// where the rider changes lines, and Directions holds the terminus id to
// travel toward on each line segment — always exactly one more entry than
// Transfers, except for the trivial start==end itinerary which has neither.
type Itinerary struct {
	Start      int
	End        int
	Time       TripTime
	Path       []int
	Transfers  []Station
	Directions []int
}

// Route computes the fastest itinerary from start to end. An unreachable
// destination yields ErrNoRoute; asking for a route from a station to
// itself yields the trivial itinerary.
func (n *Network) Route(start, end int) (*Itinerary, error) {
	if err := n.checkID(start); err != nil {
		return nil, err
	}
	if err := n.checkID(end); err != nil {
		return nil, err
	}
	if start == end {
		return &Itinerary{Start: start, End: end, Path: []int{start}}, nil
	}

	s := n.shortestPaths(start)
	if s.dist[end] == infinity {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoRoute, n.Stations[start].Name, n.Stations[end].Name)
	}

	path := []int{end}
	for current := end; current != start; {
		current = s.prev[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	it := &Itinerary{
		Start:      start,
		End:        end,
		Time:       tripTime(s.dist[end]),
		Path:       path,
		Directions: []int{n.terminusFrom(path[0], path[1])},
	}
	for i := 1; i < len(path); i++ {
		at, onto := path[i-1], path[i]
		if n.Stations[at].Line != n.Stations[onto].Line {
			it.Transfers = append(it.Transfers, n.Stations[at])
			it.Directions = append(it.Directions, n.terminusFrom(at, onto))
		}
	}
	return it, nil
}

// BestRoute computes an itinerary for every departure/arrival pair and
// keeps the fastest; among equal times the earliest pair wins, departures
// outermost. Pairs with no route are skipped, and ErrNoRoute comes back
// only when no pair connects at all.
func (n *Network) BestRoute(departures, arrivals []int) (*Itinerary, error) {
	if len(departures) == 0 || len(arrivals) == 0 {
		return nil, errors.New("no candidate stations to route between")
	}
	var best *Itinerary
	for _, from := range departures {
		for _, to := range arrivals {
			it, err := n.Route(from, to)
			if errors.Is(err, ErrNoRoute) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if best == nil || it.Time.Less(best.Time) {
				best = it
			}
		}
	}
	if best == nil {
		return nil, ErrNoRoute
	}
	return best, nil
}

// terminusFrom resolves the terminus a rider travels toward after entering
// onto from at. The walk follows same-line edges away from the station it
// just left until it reaches one flagged as a terminus. When several edges
// qualify at a station, the last one in trip declaration order wins. A line
// that dead-ends or loops without a terminus flag resolves to the last
// station the walk reaches.
func (n *Network) terminusFrom(at, onto int) int {
	prev, curr := at, onto
	for steps := 0; !n.Stations[curr].Terminus && steps < len(n.Stations); steps++ {
		next := -1
		for _, e := range n.Neighbors(curr) {
			if n.Stations[e.To].Line == n.Stations[curr].Line && e.To != prev {
				next = e.To
			}
		}
		if next < 0 {
			break
		}
		prev, curr = curr, next
	}
	return curr
}

func (n *Network) checkID(id int) error {
	if id < 0 || id >= len(n.Stations) {
		return fmt.Errorf("station id %d out of range (%d stations)", id, len(n.Stations))
	}
	return nil
}
