package particle

import (
	"errors"
	"math"
)

// hbarMeVns is the reduced Planck constant in MeV*ns.
const hbarMeVns = 6.582119569e-13

// speedOfLightMMPerNs is the speed of light in mm/ns.
const speedOfLightMMPerNs = 299.792458

var errNegativeWidth = errors.New("width must be non-negative")
var errNegativeLifetime = errors.New("lifetime must be non-negative")

// WidthToLifetime converts a decay width in MeV to a lifetime in
// nanoseconds. A zero width maps to an infinite lifetime.
func WidthToLifetime(width float64) (float64, error) {
	if width < 0 {
		return 0, errNegativeWidth
	}
	if width == 0 {
		return math.Inf(1), nil
	}
	return hbarMeVns / width, nil
}

// LifetimeToWidth converts a lifetime in nanoseconds to a decay width
// in MeV. A zero lifetime maps to an infinite width.
func LifetimeToWidth(lifetime float64) (float64, error) {
	if lifetime < 0 {
		return 0, errNegativeLifetime
	}
	if lifetime == 0 {
		return math.Inf(1), nil
	}
	return hbarMeVns / lifetime, nil
}
