// Package gearing has the drivetrain model and the best-path selection algorithms.
package gearing

import (
	"fmt"
	"math"
)

// Geometry constants.
const (
	metersPerInch  = 0.0254
	minutesPerHour = 60
)

// DefaultHarderMultiple is the multiple used by IsHarderThan when no threshold is given.
const DefaultHarderMultiple = 1.05

// GearKey locates a gear inside its drivetrain matrix.
type GearKey struct {
	FrontPos    int `json:"front_pos"`
	HubRatioPos int `json:"hub_ratio_pos"`
	RearPos     int `json:"rear_pos"`
}

// Gear represents one achievable front/rear(/hub) combination and its derived metrics.
// All derived fields are computed once by NewGear.
type Gear struct {
	Front       int     // Chainring teeth
	Rear        int     // Cog teeth
	HubRatio    float64 // Internal hub multiplier, 1 when the drivetrain has no hub
	WheelRadius float64 // Meters
	CrankLength float64 // Meters

	FrontPos    int // Index in the ascending chainring list
	RearPos     int // Index in the cassette, counted from the largest (easiest) cog
	HubRatioPos int // Index in the ascending hub ratio list

	GearRatio           float64 // front/rear * hub
	GainRatio           float64 // wheel travel per unit of pedal travel
	TravelPerRevolution float64 // Meters travelled per crank revolution (development)
	GearInches          float64 // Traditional gear inches: GearRatio * wheel diameter in inches

	InBestPath bool // Set by the owning drivetrain after path selection
}

// NewGear computes a gear from its teeth counts and the wheel/crank geometry.
// A hubRatio of 0 is treated as no hub.
func NewGear(front, rear int, hubRatio, wheelRadius, crankLength float64) Gear {
	if hubRatio == 0 {
		hubRatio = 1
	}
	gearRatio := float64(front) / float64(rear) * hubRatio
	gainRatio := gearRatio * (wheelRadius / crankLength)
	crankOrbit := 2 * math.Pi * crankLength

	return Gear{
		Front:               front,
		Rear:                rear,
		HubRatio:            hubRatio,
		WheelRadius:         wheelRadius,
		CrankLength:         crankLength,
		GearRatio:           gearRatio,
		GainRatio:           gainRatio,
		TravelPerRevolution: crankOrbit * gainRatio,
		GearInches:          gearRatio * (2 * wheelRadius / metersPerInch),
	}
}

// Key returns the position of the gear in its drivetrain matrix.
func (g Gear) Key() GearKey {
	return GearKey{FrontPos: g.FrontPos, HubRatioPos: g.HubRatioPos, RearPos: g.RearPos}
}

// HasHub reports whether the gear goes through an internal hub ratio other than 1.
func (g Gear) HasHub() bool {
	return g.HubRatio != 1
}

// Label formats the gear as "front/rear", adding "@hub" when a hub ratio applies.
func (g Gear) Label() string {
	if g.HasHub() {
		return fmt.Sprintf("%d/%d@%.2f", g.Front, g.Rear, g.HubRatio)
	}
	return fmt.Sprintf("%d/%d", g.Front, g.Rear)
}

// String implements fmt.Stringer.
func (g Gear) String() string {
	return g.Label()
}

// PerHourSpeedAtRPM returns the ground speed in meters per hour at the given cadence.
func (g Gear) PerHourSpeedAtRPM(rpm float64) float64 {
	return g.TravelPerRevolution * rpm * minutesPerHour
}

// Compare returns -1, 0 or 1 depending on whether g is easier than, equal to or harder than other.
// Equal gain ratios from different combinations compare as equal.
func (g Gear) Compare(other Gear) int {
	switch {
	case g.GainRatio < other.GainRatio:
		return -1
	case g.GainRatio > other.GainRatio:
		return 1
	default:
		return 0
	}
}

// MultipleHarderThan returns gainRatio / other.gainRatio.
func (g Gear) MultipleHarderThan(other Gear) float64 {
	return g.GainRatio / other.GainRatio
}

// PercentHarderThan returns the relative step from other to g, e.g. 0.1 for 10% harder.
func (g Gear) PercentHarderThan(other Gear) float64 {
	return (g.GainRatio - other.GainRatio) / other.GainRatio
}

// IsHarderThan reports whether g is more than threshold times harder than other.
// A non-positive threshold uses DefaultHarderMultiple.
func (g Gear) IsHarderThan(other Gear, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultHarderMultiple
	}
	return g.MultipleHarderThan(other) > threshold
}

// isDistinctFrom reports whether g is harder than other by more than the relative threshold.
func (g Gear) isDistinctFrom(other Gear, threshold float64) bool {
	return g.GainRatio > other.GainRatio && g.PercentHarderThan(other) > threshold
}
