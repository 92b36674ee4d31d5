// Package core: PathResult, the value every shortest-path search hands back.

package core

// PathResult is an ordered sequence of city IDs from source to destination
// together with the total accumulated distance.
//
// A search creates the result empty, appends IDs while back-walking parent
// pointers from the destination, then reverses once. A zero-length result is
// the normal "no path" outcome, not an error; a self-path (src == dest) is a
// single-element path with distance zero, distinguishable from "no path".
type PathResult struct {
	// CityIDs lists the path source → destination.
	CityIDs []int

	// TotalDistance is the accumulated distance along the path.
	TotalDistance int64
}

// Empty reports whether the result carries no path.
func (p *PathResult) Empty() bool {
	return len(p.CityIDs) == 0
}

// Len returns the number of cities on the path.
func (p *PathResult) Len() int {
	return len(p.CityIDs)
}

// Append adds a city ID to the end of the path.
// Used during parent-pointer back-walking, so IDs arrive destination-first.
func (p *PathResult) Append(id int) {
	p.CityIDs = append(p.CityIDs, id)
}

// Reverse flips the path in place, converting the destination-first order
// produced by back-walking into source → destination order.
// Complexity: O(len).
func (p *PathResult) Reverse() {
	for i, j := 0, len(p.CityIDs)-1; i < j; i, j = i+1, j-1 {
		p.CityIDs[i], p.CityIDs[j] = p.CityIDs[j], p.CityIDs[i]
	}
}
