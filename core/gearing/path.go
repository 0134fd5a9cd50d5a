package gearing

import (
	"sort"
)

// DefaultDistinctThreshold is the minimum relative step between two consecutive gears of a path.
// A harder gear closer than 5% to the previous one is considered a redundant duplicate.
const DefaultDistinctThreshold = 0.05

// normalizeThreshold maps a non-positive threshold to DefaultDistinctThreshold.
func normalizeThreshold(threshold float64) float64 {
	if threshold <= 0 {
		return DefaultDistinctThreshold
	}
	return threshold
}

// normalizeGroups returns a sorted deep copy of groups: each group ordered easiest to hardest,
// groups ordered by their easiest gear. Empty groups are dropped.
func normalizeGroups(groups [][]Gear) [][]Gear {
	out := make([][]Gear, 0, len(groups))
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		sorted := make([]Gear, len(group))
		copy(sorted, group)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GainRatio < sorted[j].GainRatio
		})
		out = append(out, sorted)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i][0].GainRatio != out[j][0].GainRatio {
			return out[i][0].GainRatio < out[j][0].GainRatio
		}
		return out[i][len(out[i])-1].GainRatio < out[j][len(out[j])-1].GainRatio
	})
	return out
}

// joinPath keeps path[:pos] and appends every harder gear that is distinct from the last kept gear.
// pos is at least 1.
func joinPath(path, harder []Gear, pos int, threshold float64) []Gear {
	joined := make([]Gear, pos, pos+len(harder))
	copy(joined, path[:pos])
	last := joined[pos-1]
	for _, g := range harder {
		if g.isDistinctFrom(last, threshold) {
			joined = append(joined, g)
		}
	}
	return joined
}

// bestShiftPosition finds the shift position in path that minimizes the objective of the joined path.
// Ties keep the earliest position.
func bestShiftPosition(path, harder []Gear, objective Objective, threshold float64) int {
	start := max(1, len(path)-len(harder)+1)
	bestPos := -1
	var bestScore float64
	for pos := start; pos <= len(path); pos++ {
		score := objective(joinPath(path, harder, pos, threshold))
		if bestPos < 0 || score < bestScore {
			bestPos = pos
			bestScore = score
		}
	}
	return bestPos
}

// ComputeBestPath selects an evenly stepped, non-redundant gear path with a greedy pass over
// the groups. Each group is one chainring (or chainring and hub ratio) ordered easiest to hardest.
// For every transition to a harder group, only the shift position is searched, so the cost is
// O(groups * cogs^2). A nil objective uses StepStdDev; a non-positive threshold uses
// DefaultDistinctThreshold. The input is not modified.
func ComputeBestPath(groups [][]Gear, objective Objective, threshold float64) []Gear {
	if objective == nil {
		objective = StepStdDev
	}
	threshold = normalizeThreshold(threshold)

	sorted := normalizeGroups(groups)
	if len(sorted) == 0 {
		return nil
	}

	path := sorted[0]
	for _, harder := range sorted[1:] {
		pos := bestShiftPosition(path, harder, objective, threshold)
		path = joinPath(path, harder, pos, threshold)
	}
	return path
}
