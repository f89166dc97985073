// Package ring360 implements arithmetic on a 360 degree circle.
//
// A Ring360 wraps a raw float64 degree value of any magnitude and sign.
// Arithmetic never normalizes the raw value, so a Ring360 keeps track of
// total angular travel while Degrees always reports the position on the
// circle in [0,360). Geographic ±180 longitudes are supported through the
// GIS conversions.
package ring360

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// Base is the period of the ring. All degree values are modulated by it.
	Base = 360.0
	// HalfTurn is half the period, the upper bound of the GIS range.
	HalfTurn = 180.0
	// NegHalfTurn is the lower bound of the GIS range.
	NegHalfTurn = -180.0
)

// Ring360 is an angular position on a 360 degree circle. The zero value
// is 0 degrees. Ring360 values are immutable, all methods return new
// values and never modify the receiver.
type Ring360 struct {
	raw float64
}

// New returns the Ring360 with raw degree value v. The raw value is
// stored verbatim and may be negative or many turns large. New does not
// validate v: a NaN or infinite input propagates through every derived
// value per IEEE 754, callers needing strict input checking must test
// finiteness themselves.
func New(v float64) Ring360 {
	return Ring360{raw: v}
}

// FromGIS returns the Ring360 for a degree value in the geographic ±180
// convention, e.g. a longitude. The position on the circle is the same as
// New would produce, but the raw value is normalized at construction so
// that the rotation count derives from the normalized degrees:
// FromGIS(-90).Rotations() is 0 where New(-90).Rotations() is -1.
func FromGIS(gis float64) Ring360 {
	d := math.Mod(gis, Base)
	if d < 0 {
		d += Base
	}
	return Ring360{raw: d}
}

// Value returns the raw degree value, unnormalized.
func (g Ring360) Value() float64 {
	return g.raw
}

// Degrees returns the position on the circle in [0,360).
func (g Ring360) Degrees() float64 {
	d := math.Mod(g.raw, Base)
	if d < 0 {
		d += Base
	}
	return d
}

// Rotations returns the signed count of whole turns separating the raw
// value from Degrees, such that Value == Degrees + 360*Rotations up to
// floating point precision. Negative raw values yield negative counts.
func (g Ring360) Rotations() int64 {
	return int64(math.Floor(g.raw / Base))
}

// Progress returns the raw value as a signed fraction of a turn,
// Value/360. It is not normalized.
func (g Ring360) Progress() float64 {
	return g.raw / Base
}

// DegreesAndRotations returns Degrees and Rotations as a pair.
func (g Ring360) DegreesAndRotations() (float64, int64) {
	return g.Degrees(), g.Rotations()
}

// GIS returns the position in the geographic ±180 convention. Degrees in
// [0,180] map to themselves and degrees in (180,360) map to negative
// values, so the result is in (-180,180]. An antipodal position reads
// 180, never -180.
func (g Ring360) GIS() float64 {
	d := g.Degrees()
	if d > HalfTurn {
		d -= Base
	}
	return d
}

// Add returns the sum of two ring values. The raw values are added
// without normalization, so repeated addition accumulates rotations.
func (g Ring360) Add(o Ring360) Ring360 {
	return Ring360{raw: g.raw + o.raw}
}

// Sub returns the difference of two ring values on the raw values.
func (g Ring360) Sub(o Ring360) Ring360 {
	return Ring360{raw: g.raw - o.raw}
}

// Multiply scales the raw value by k. Multiplying two angular positions
// has no meaning on the ring, only scalar scaling is provided.
func (g Ring360) Multiply(k float64) Ring360 {
	return Ring360{raw: g.raw * k}
}

// Divide scales the raw value by 1/k. A zero k follows IEEE 754 and
// yields an infinite or NaN raw value, it is not trapped.
func (g Ring360) Divide(k float64) Ring360 {
	return Ring360{raw: g.raw / k}
}

// Angle returns the shortest angular displacement travelling from g to o
// in degrees, in (-180,180]. Positive results travel clockwise, in the
// direction of increasing degrees, negative results counter-clockwise.
// Angle(a,b) == -Angle(b,a) except for antipodal positions, which read
// +180 from either end.
func (g Ring360) Angle(o Ring360) float64 {
	return g.AngleDeg(o.Degrees())
}

// AngleDeg is Angle with the target given as a raw degree value. It
// returns the same result as g.Angle(New(v)).
func (g Ring360) AngleDeg(v float64) float64 {
	delta := math.Mod(v-g.Degrees(), Base)
	if delta < 0 {
		delta += Base
	}
	if delta > HalfTurn {
		delta -= Base
	}
	return delta
}

// AngleAbs returns the clockwise-only angular reading from g to o in
// [0,360). It is deliberately asymmetric: unless the positions coincide,
// AngleAbs(a,b) + AngleAbs(b,a) == 360. It is a directional reading
// forced non-negative, not the magnitude of Angle.
func (g Ring360) AngleAbs(o Ring360) float64 {
	return g.AngleAbsDeg(o.Degrees())
}

// AngleAbsDeg is AngleAbs with the target given as a raw degree value.
func (g Ring360) AngleAbsDeg(v float64) float64 {
	delta := math.Mod(v-g.Degrees(), Base)
	if delta < 0 {
		delta += Base
	}
	return delta
}

// Radians returns the normalized position in radians, in [0,2π).
func (g Ring360) Radians() float64 {
	return g.Degrees() * (math.Pi / HalfTurn)
}

// Sin returns the sine of the position.
func (g Ring360) Sin() float64 {
	return math.Sin(g.Radians())
}

// Cos returns the cosine of the position.
func (g Ring360) Cos() float64 {
	return math.Cos(g.Radians())
}

// Tan returns the tangent of the position.
func (g Ring360) Tan() float64 {
	return math.Tan(g.Radians())
}

// Vec returns the unit direction vector of the position, with X along 0
// degrees and Y along 90 degrees.
func (g Ring360) Vec() r2.Vec {
	return r2.Vec{X: g.Cos(), Y: g.Sin()}
}

// String returns the normalized degree value, not the raw value.
func (g Ring360) String() string {
	return strconv.FormatFloat(g.Degrees(), 'f', -1, 64)
}
