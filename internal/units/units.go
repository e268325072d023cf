// Package units provides shared constants and conversions for speed and
// angle units. Simulation state is always SI (m, m/s, rad); conversion
// happens at the reporting edge only.
package units

import "math"

// Unit constants
const (
	MPS  = "mps"
	KN   = "kn"
	KMPH = "kmph"
	KPH  = "kph"
)

// One knot is one nautical mile (1852 m) per hour.
const knotsPerMeterPerSecond = 3600.0 / 1852.0

// ValidUnits contains all valid speed unit values
var ValidUnits = []string{MPS, KN, KMPH, KPH}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mps, kn, kmph, kph"
}

// ConvertSpeed converts a speed from meters per second to the target units.
// Unknown units pass the value through unchanged.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case KN:
		return speedMPS * knotsPerMeterPerSecond
	case KMPH, KPH:
		return speedMPS * 3.6
	case MPS:
		return speedMPS
	default:
		return speedMPS
	}
}

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts an angle from degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
