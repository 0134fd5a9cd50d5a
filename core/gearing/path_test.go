package gearing

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gravelFronts   = []int{30, 46}
	gravelRears    = []int{11, 13, 15, 17, 19, 22, 25, 28, 32, 36}
	triple         = []int{22, 32, 44}
	tripleRears    = []int{11, 13, 15, 17, 20, 23, 26, 32}
	compactFronts  = []int{34, 50}
	compactRears   = []int{11, 12, 13, 14, 15, 17, 19, 21, 24, 28}
	gravelBestPath = []string{
		"30/36", "30/32", "30/28", "30/25", "30/22", "30/19",
		"46/25", "46/22", "46/19", "46/17", "46/15", "46/13", "46/11",
	}
)

// buildGroups returns the selection groups of a drivetrain, one per chainring and hub ratio.
func buildGroups(t *testing.T, fronts, rears []int, hubs []float64) [][]Gear {
	t.Helper()
	matrix, err := BuildGearMatrix(fronts, rears, hubs, testWheelRadius, testCrankLength)
	require.NoError(t, err)
	var groups [][]Gear
	for _, byHub := range matrix {
		groups = append(groups, byHub...)
	}
	return groups
}

func labels(path []Gear) []string {
	out := make([]string, len(path))
	for i, g := range path {
		out[i] = g.Label()
	}
	return out
}

func TestComputeBestPathGravel(t *testing.T) {
	groups := buildGroups(t, gravelFronts, gravelRears, nil)

	path := ComputeBestPath(groups, nil, 0)

	assert.Equal(t, gravelBestPath, labels(path))
	assert.InDelta(t, 0.018778, StepStdDev(path), 0.00001)
	for i := 1; i < len(path); i++ {
		assert.Greater(t, path[i].PercentHarderThan(path[i-1]), DefaultDistinctThreshold, "step %d", i)
	}

	var all []Gear
	for _, g := range groups {
		all = append(all, g...)
	}
	naive := normalizeGroups([][]Gear{all})[0]
	assert.InDelta(t, 0.044376, StepStdDev(naive), 0.00001)
	assert.LessOrEqual(t, StepStdDev(path), StepStdDev(naive))
}

func TestComputeBestPathObjectives(t *testing.T) {
	tests := []struct {
		name      string
		fronts    []int
		rears     []int
		objective Objective
		size      int
		score     float64
	}{
		{name: "triple stddev", fronts: triple, rears: tripleRears, objective: StepStdDev, size: 13, score: 0.029527},
		{name: "triple sum", fronts: triple, rears: tripleRears, objective: StepSum, size: 14, score: 1.894115},
		{name: "triple max", fronts: triple, rears: tripleRears, objective: StepMax, score: 0.230769},
		{name: "compact stddev", fronts: compactFronts, rears: compactRears, objective: StepStdDev, size: 15, score: 0.028794},
		{name: "compact max", fronts: compactFronts, rears: compactRears, objective: StepMax, size: 13, score: 0.166667},
		{name: "compact sum", fronts: compactFronts, rears: compactRears, objective: StepSum, size: 15, score: 1.389387},
		{name: "gravel max", fronts: gravelFronts, rears: gravelRears, objective: StepMax, size: 14, score: 0.181818},
		{name: "gravel sum", fronts: gravelFronts, rears: gravelRears, objective: StepSum, size: 14, score: 1.721432},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ComputeBestPath(buildGroups(t, tt.fronts, tt.rears, nil), tt.objective, DefaultDistinctThreshold)
			if tt.size > 0 {
				assert.Len(t, path, tt.size)
			}
			assert.InDelta(t, tt.score, tt.objective(path), 0.00001)
		})
	}
}

func TestComputeBestPathTripleLabels(t *testing.T) {
	path := ComputeBestPath(buildGroups(t, triple, tripleRears, nil), StepStdDev, 0)
	assert.Equal(t, []string{
		"22/32", "22/26", "22/23", "22/20",
		"32/26", "32/23", "32/20", "32/17",
		"44/20", "44/17", "44/15", "44/13", "44/11",
	}, labels(path))
}

func TestComputeBestPathEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		fronts   []int
		rears    []int
		expected []string
	}{
		{name: "single chainring", fronts: []int{32}, rears: []int{11, 13, 15}, expected: []string{"32/15", "32/13", "32/11"}},
		{name: "single cog", fronts: []int{30, 46}, rears: []int{11}, expected: []string{"30/11", "46/11"}},
		{name: "single gear", fronts: []int{40}, rears: []int{16}, expected: []string{"40/16"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ComputeBestPath(buildGroups(t, tt.fronts, tt.rears, nil), nil, 0)
			assert.Equal(t, tt.expected, labels(path))
		})
	}
}

func TestComputeBestPathEmpty(t *testing.T) {
	assert.Nil(t, ComputeBestPath(nil, nil, 0))
	assert.Nil(t, ComputeBestPath([][]Gear{{}, {}}, nil, 0))
}

func TestComputeBestPathDefensiveOrdering(t *testing.T) {
	groups := buildGroups(t, gravelFronts, gravelRears, nil)
	expected := ComputeBestPath(groups, nil, 0)

	shuffled := [][]Gear{slices.Clone(groups[1]), slices.Clone(groups[0])}
	slices.Reverse(shuffled[0])
	snapshot := slices.Clone(shuffled[0])

	assert.Equal(t, expected, ComputeBestPath(shuffled, nil, 0))
	assert.Equal(t, snapshot, shuffled[0], "input must not be modified")
}

func TestComputeBestPathIdempotent(t *testing.T) {
	groups := buildGroups(t, triple, tripleRears, nil)
	first := ComputeBestPath(groups, StepSum, 0)
	second := ComputeBestPath(groups, StepSum, 0)
	assert.Equal(t, first, second)
}

func TestComputeBestPathHubGroups(t *testing.T) {
	groups := buildGroups(t, []int{36}, []int{11, 13, 15, 17, 19, 22, 25, 28}, []float64{0.5, 1})

	path := ComputeBestPath(groups, nil, 0)

	assert.Equal(t, []string{
		"36/28@0.50", "36/25@0.50", "36/22@0.50", "36/19@0.50", "36/17@0.50", "36/15@0.50", "36/13@0.50",
		"36/22", "36/19", "36/17", "36/15", "36/13", "36/11",
	}, labels(path))
	assert.InDelta(t, 0.021729, StepStdDev(path), 0.00001)
}

func TestComputeBestPathThreshold(t *testing.T) {
	groups := buildGroups(t, gravelFronts, gravelRears, nil)

	path := ComputeBestPath(groups, nil, 0.3)

	assert.Equal(t, []string{
		"30/36", "30/32", "30/28", "30/25", "30/22", "30/19",
		"46/22", "46/19", "46/17", "46/15", "46/13", "46/11",
	}, labels(path))
	assert.Greater(t, path[6].PercentHarderThan(path[5]), 0.3)
}

func TestJoinPathKeepsFirstGear(t *testing.T) {
	groups := normalizeGroups(buildGroups(t, []int{22, 23}, overlapRears, nil))
	easier, harder := groups[0], groups[1]

	assert.GreaterOrEqual(t, bestShiftPosition(easier, harder, StepStdDev, DefaultDistinctThreshold), 1)

	joined := joinPath(easier, harder, 1, DefaultDistinctThreshold)
	assert.Equal(t, []string{"22/49", "23/39", "23/25", "23/22", "23/18", "23/13", "23/11"}, labels(joined))

	// nothing of the harder ring is distinct from 22/11
	joined = joinPath(easier, harder, len(easier), DefaultDistinctThreshold)
	assert.Equal(t, labels(easier), labels(joined))
}
