// Package units converts between the drawing units accepted by the repair
// tools. All factors are expressed relative to millimeters.
package units

import "fmt"

var toMM = map[string]float64{
	"mm": 1,
	"cm": 10,
	"in": 25.4,
}

// Valid reports whether the unit name is supported.
func Valid(unit string) bool {
	_, ok := toMM[unit]
	return ok
}

// Factor returns the multiplier that converts coordinates in `from` units
// into `to` units.
func Factor(from, to string) (float64, error) {
	f, ok := toMM[from]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	t, ok := toMM[to]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	return f / t, nil
}

// InsunitsCode returns the DXF $INSUNITS header value for a unit name.
func InsunitsCode(unit string) int {
	switch unit {
	case "in":
		return 1
	case "cm":
		return 5
	default:
		return 4 // millimeters
	}
}
