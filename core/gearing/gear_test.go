package gearing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testWheelRadius = 0.584/2 + 0.048
	testCrankLength = 0.17
)

func TestNewGear(t *testing.T) {
	g := NewGear(46, 11, 0, testWheelRadius, testCrankLength)

	assert.Equal(t, 1.0, g.HubRatio)
	assert.InDelta(t, 4.1818, g.GearRatio, 0.0001)
	assert.InDelta(t, 8.3636, g.GainRatio, 0.0001)
	assert.InDelta(t, 8.9335, g.TravelPerRevolution, 0.0001)
	assert.InDelta(t, 111.954, g.GearInches, 0.001)
	assert.InDelta(t, 48241.15, g.PerHourSpeedAtRPM(90), 0.01)
	assert.Equal(t, "46/11", g.Label())
	assert.Equal(t, "46/11", g.String())
	assert.False(t, g.HasHub())
}

func TestNewGearWithHub(t *testing.T) {
	g := NewGear(36, 22, 0.5, testWheelRadius, testCrankLength)
	plain := NewGear(36, 22, 1, testWheelRadius, testCrankLength)

	assert.True(t, g.HasHub())
	assert.Equal(t, "36/22@0.50", g.Label())
	assert.InDelta(t, plain.GainRatio/2, g.GainRatio, 1e-12)
}

func TestGainRatioMonotonic(t *testing.T) {
	prev := NewGear(30, 36, 1, testWheelRadius, testCrankLength)
	for _, rear := range []int{32, 28, 25, 22, 19} {
		g := NewGear(30, rear, 1, testWheelRadius, testCrankLength)
		assert.Greater(t, g.GainRatio, prev.GainRatio, "smaller cog must be harder")
		prev = g
	}
	assert.Greater(t,
		NewGear(46, 19, 1, testWheelRadius, testCrankLength).GainRatio,
		NewGear(30, 19, 1, testWheelRadius, testCrankLength).GainRatio,
	)
}

func TestGearComparisons(t *testing.T) {
	easy := NewGear(30, 36, 1, testWheelRadius, testCrankLength)
	hard := NewGear(46, 11, 1, testWheelRadius, testCrankLength)
	// 32/16 and 30/15 share a ratio
	same := NewGear(32, 16, 1, testWheelRadius, testCrankLength)
	twin := NewGear(30, 15, 1, testWheelRadius, testCrankLength)

	tests := []struct {
		name     string
		a, b     Gear
		compare  int
		multiple float64
		percent  float64
	}{
		{name: "easier", a: easy, b: hard, compare: -1, multiple: 1.6667 / 8.3636, percent: 1.6667/8.3636 - 1},
		{name: "harder", a: hard, b: easy, compare: 1, multiple: 8.3636 / 1.6667, percent: 8.3636/1.6667 - 1},
		{name: "self", a: hard, b: hard, compare: 0, multiple: 1, percent: 0},
		{name: "equal ratio", a: same, b: twin, compare: 0, multiple: 1, percent: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.compare, tt.a.Compare(tt.b))
			assert.InDelta(t, tt.multiple, tt.a.MultipleHarderThan(tt.b), 0.001)
			assert.InDelta(t, tt.percent, tt.a.PercentHarderThan(tt.b), 0.001)
		})
	}
}

func TestIsHarderThan(t *testing.T) {
	base := NewGear(40, 20, 1, testWheelRadius, testCrankLength)
	tests := []struct {
		name      string
		front     int
		threshold float64
		expected  bool
	}{
		{name: "default multiple exceeded", front: 43, threshold: 0, expected: true},
		{name: "default multiple not exceeded", front: 41, threshold: 0, expected: false},
		{name: "negative uses default", front: 43, threshold: -1, expected: true},
		{name: "custom multiple", front: 43, threshold: 1.1, expected: false},
		{name: "easier gear", front: 30, threshold: 0, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGear(tt.front, 20, 1, testWheelRadius, testCrankLength)
			assert.Equal(t, tt.expected, g.IsHarderThan(base, tt.threshold))
		})
	}
}

func TestPercentHarderThanZeroRatio(t *testing.T) {
	g := NewGear(30, 15, 1, testWheelRadius, testCrankLength)
	var zero Gear
	assert.True(t, math.IsInf(g.PercentHarderThan(zero), 1))
	assert.True(t, math.IsNaN(zero.PercentHarderThan(zero)))
}
