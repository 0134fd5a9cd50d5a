package gearing

import (
	"fmt"
	"math"
)

// DefaultMaxSearchPaths bounds the number of candidate paths FindBestShifts may enumerate.
const DefaultMaxSearchPaths = 1 << 20

// zone is the half-open index range of a group that can appear in any path.
type zone struct {
	lo, hi int
}

// shiftSearch holds the state of one exhaustive enumeration.
type shiftSearch struct {
	groups    [][]Gear
	zones     []zone
	threshold float64
	visit     func(candidate []Gear)
}

// candidateZones trims the prefix outliers of each group. Every path starts at the overall
// easiest gear, so gears of later groups that are not distinct from it can never join a path.
func candidateZones(groups [][]Gear, threshold float64) []zone {
	easiest := groups[0][0]

	zones := make([]zone, len(groups))
	for i, group := range groups {
		z := zone{lo: 0, hi: len(group)}
		if i > 0 {
			for z.lo < len(group) && !group[z.lo].isDistinctFrom(easiest, threshold) {
				z.lo++
			}
		}
		zones[i] = z
	}
	return zones
}

// estimateSearchSpace returns an upper bound on the number of candidate paths: every prefix of
// the easiest group times every run length of each middle group, the empty run included.
func estimateSearchSpace(zones []zone) float64 {
	total := math.Max(1, float64(zones[0].hi-zones[0].lo))
	if len(zones) > 2 {
		for _, z := range zones[1 : len(zones)-1] {
			total *= float64(z.hi-z.lo) + 1
		}
	}
	return total
}

// firstDistinct returns the first index in [lo, hi) of group that is distinct from prev, or -1.
func firstDistinct(group []Gear, lo, hi int, prev Gear, threshold float64) int {
	for j := lo; j < hi; j++ {
		if group[j].isDistinctFrom(prev, threshold) {
			return j
		}
	}
	return -1
}

// walk extends path with a run of group i and recurses into the harder groups.
func (s *shiftSearch) walk(i int, path []Gear) {
	group := s.groups[i]
	z := s.zones[i]

	if i == 0 {
		for end := z.lo + 1; end <= z.hi; end++ {
			s.walk(1, group[z.lo:end:end])
		}
		return
	}

	start := firstDistinct(group, z.lo, z.hi, path[len(path)-1], s.threshold)
	if i == len(s.groups)-1 {
		candidate := make([]Gear, 0, len(path)+len(group))
		candidate = append(candidate, path...)
		if start >= 0 {
			candidate = append(candidate, group[start:]...)
		}
		s.visit(candidate)
		return
	}

	// A middle group may be skipped entirely or end on any of its gears.
	s.walk(i+1, path)
	if start < 0 {
		return
	}
	for end := start + 1; end <= z.hi; end++ {
		s.walk(i+1, append(path[:len(path):len(path)], group[start:end]...))
	}
}

// FindBestShifts searches every valid path over the groups and returns the one with the lowest
// objective. A path keeps a non-empty prefix of the easiest group and a contiguous run of each
// middle group, possibly empty, starting at its first gear distinct from the previous one. The
// last group contributes everything from its first distinct gear to its hardest gear, or nothing
// when no gear of it is distinct. Every ComputeBestPath result is one of these candidates.
// Ties keep the first path found.
//
// The search is exponential in the number of groups. It fails with ErrSearchSpaceTooLarge when
// the estimated number of candidates exceeds maxPaths (DefaultMaxSearchPaths when non-positive).
func FindBestShifts(groups [][]Gear, objective Objective, threshold float64, maxPaths int) ([]Gear, error) {
	if objective == nil {
		objective = StepStdDev
	}
	if maxPaths <= 0 {
		maxPaths = DefaultMaxSearchPaths
	}
	threshold = normalizeThreshold(threshold)

	sorted := normalizeGroups(groups)
	switch len(sorted) {
	case 0:
		return nil, nil
	case 1:
		return sorted[0], nil
	}

	zones := candidateZones(sorted, threshold)
	if estimate := estimateSearchSpace(zones); estimate > float64(maxPaths) {
		return nil, fmt.Errorf("%w: about %.0f candidate paths, limit is %d", ErrSearchSpaceTooLarge, estimate, maxPaths)
	}

	var best []Gear
	var bestScore float64
	search := &shiftSearch{
		groups:    sorted,
		zones:     zones,
		threshold: threshold,
		visit: func(candidate []Gear) {
			score := objective(candidate)
			if best == nil || score < bestScore {
				best = candidate
				bestScore = score
			}
		},
	}
	search.walk(0, nil)
	return best, nil
}
