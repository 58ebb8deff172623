package scheduler

import "sort"

// Quality is the ordering key for an embedding snapshot (spec §4.G
// "Ordering (quality key)"): lexicographically smaller is better.
type Quality struct {
	State       int // 2 empty, 1 overlapping, 0 proper
	OverlapHist []int
	LengthHist  []int
}

// Less reports whether q is strictly better than other under the
// lexicographic tuple (state, overlap_histogram, length_histogram).
func (q Quality) Less(other Quality) bool {
	if q.State != other.State {
		return q.State < other.State
	}
	if c := compareInts(q.OverlapHist, other.OverlapHist); c != 0 {
		return c < 0
	}
	return compareInts(q.LengthHist, other.LengthHist) < 0
}

// compareInts lexicographically compares two int slices; a shorter slice
// that agrees with the other on every shared position compares smaller.
func compareInts(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// histogram groups values into (value, count) pairs sorted by value
// descending, flattened as [v1, c1, v2, c2, ...] (spec §4.G).
func histogram(values []int) []int {
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	out := make([]int, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, counts[k])
	}
	return out
}

// lengthVector is the lexicographically-sorted-descending chain-length
// vector used by phase iii's strict-improvement test (spec §4.G): chain
// lengths sorted descending, one entry per source vertex (0-length chains
// included, so a newly-placed vertex always counts against the vector).
func lengthVector(lengths []int) []int {
	out := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
