package schema

import (
	"strconv"
	"strings"
)

// Unit conversion factors.
const (
	metersPerKilometer = 1000.0
	metersPerMile      = 1609.344
	metersPerFoot      = 0.3048
)

// ConvertSpeed converts a speed in meters per hour to km/h or mph.
func ConvertSpeed(metersPerHour float64, units Units) float64 {
	if units == ImperialUnits {
		return metersPerHour / metersPerMile
	}
	return metersPerHour / metersPerKilometer
}

// ConvertDistance converts meters to meters or feet.
func ConvertDistance(meters float64, units Units) float64 {
	if units == ImperialUnits {
		return meters / metersPerFoot
	}
	return meters
}

// SpeedUnit returns the speed unit symbol for units.
func SpeedUnit(units Units) string {
	if units == ImperialUnits {
		return "mph"
	}
	return "km/h"
}

// DistanceUnit returns the distance unit symbol for units.
func DistanceUnit(units Units) string {
	if units == ImperialUnits {
		return "ft"
	}
	return "m"
}

// FormatInts formats teeth counts as "30/46".
func FormatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}

// FormatRatios formats hub ratios as "0.50/1.00".
func FormatRatios(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strings.Join(parts, "/")
}

// SpeedHeader returns the column header for the speed at rpm.
func SpeedHeader(rpm float64, units Units) string {
	return "@" + strconv.FormatFloat(rpm, 'f', -1, 64) + "rpm " + SpeedUnit(units)
}
