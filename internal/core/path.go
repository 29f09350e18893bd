package core

// PathResult is the outcome of a pathfinding query. Unreachable or unknown
// endpoints yield Found=false rather than an error.
type PathResult struct {
	Path  []NodeID
	Cost  float64
	Found bool
}

// NotFound is the canonical empty result.
func NotFound() PathResult {
	return PathResult{Path: []NodeID{}, Cost: 0, Found: false}
}

// TrivialPath is the zero-cost single-node result for start == goal.
func TrivialPath(n NodeID) PathResult {
	return PathResult{Path: []NodeID{n}, Cost: 0, Found: true}
}
