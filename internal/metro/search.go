package metro

import "math"

// stopPenalty is the dwell time in seconds charged when the search relaxes
// an edge into a station. The penalty is added to the stored distance but
// left out of the improvement test, so a stored distance means "time to
// depart from this station", not "time to arrive". Changing either side of
// that asymmetry changes every computed trip time.
const stopPenalty = 30

// infinity marks a station the search has not reached.
const infinity = math.MaxInt

// searchState is the bookkeeping of a single source-to-all query. Each
// query owns a private searchState; the Network itself is never written.
type searchState struct {
	dist    []int
	prev    []int
	visited []bool
}

// shortestPaths runs the full single-source relaxation from start, visiting
// every reachable station before returning; there is no early exit at any
// particular destination. Unreachable stations keep an infinite distance
// and no predecessor.
func (n *Network) shortestPaths(start int) *searchState {
	s := &searchState{
		dist:    make([]int, len(n.Stations)),
		prev:    make([]int, len(n.Stations)),
		visited: make([]bool, len(n.Stations)),
	}
	for i := range s.dist {
		s.dist[i] = infinity
		s.prev[i] = -1
	}
	s.dist[start] = 0

	for range n.Stations {
		current := s.nextUnvisited()
		if current < 0 {
			break // only unreachable stations left
		}
		s.visited[current] = true
		for _, e := range n.Neighbors(current) {
			if s.dist[current]+e.Seconds < s.dist[e.To] {
				s.dist[e.To] = s.dist[current] + e.Seconds + stopPenalty
				s.prev[e.To] = current
			}
		}
	}
	return s
}

// nextUnvisited selects the unvisited station with the smallest distance.
// The linear scan runs in ascending id order with a strict comparison, so
// the lowest id wins among equals; that tie-break keeps route output
// deterministic. Returns -1 once no unvisited station has a finite
// distance.
func (s *searchState) nextUnvisited() int {
	next, min := -1, infinity
	for id, d := range s.dist {
		if !s.visited[id] && d < min {
			next, min = id, d
		}
	}
	return next
}
