// Package arcsec isolates this repository's one dependency on
// soniakeys/unit's Angle type behind a narrow arcsecond/degree
// conversion, the same way the source expresses every astrometric
// uncertainty and proper-motion value in arcseconds before rendering
// it as degrees for storage.
package arcsec

import "github.com/soniakeys/unit"

// ToDegrees converts a quantity given in arcseconds to degrees.
func ToDegrees(arcsec float64) float64 {
	return unit.AngleFromSec(arcsec).Deg()
}
