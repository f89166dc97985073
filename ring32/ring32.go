// Package ring32 is the float32 counterpart of ring360 for callers on
// 32-bit pipelines. The semantics match package ring360, only the
// precision differs.
package ring32

import (
	"strconv"

	"github.com/chewxy/math32"
)

const (
	// Base is the period of the ring.
	Base = 360.0
	// HalfTurn is half the period.
	HalfTurn = 180.0
	// NegHalfTurn is the lower bound of the GIS range.
	NegHalfTurn = -180.0
)

// Ring360 is an angular position on a 360 degree circle backed by a
// float32. The zero value is 0 degrees.
type Ring360 struct {
	raw float32
}

// New returns the Ring360 with raw degree value v, stored verbatim.
// Non-finite inputs propagate, see ring360.New.
func New(v float32) Ring360 {
	return Ring360{raw: v}
}

// FromGIS returns the Ring360 for a ±180 geographic degree value. The
// raw value is normalized at construction so the rotation count derives
// from the normalized degrees, matching ring360.FromGIS.
func FromGIS(gis float32) Ring360 {
	d := math32.Mod(gis, Base)
	if d < 0 {
		d += Base
	}
	return Ring360{raw: d}
}

// Value returns the raw degree value, unnormalized.
func (g Ring360) Value() float32 {
	return g.raw
}

// Degrees returns the position on the circle in [0,360).
func (g Ring360) Degrees() float32 {
	d := math32.Mod(g.raw, Base)
	if d < 0 {
		d += Base
	}
	return d
}

// Rotations returns the signed count of whole turns separating the raw
// value from Degrees.
func (g Ring360) Rotations() int64 {
	return int64(math32.Floor(g.raw / Base))
}

// Progress returns the raw value as a signed fraction of a turn.
func (g Ring360) Progress() float32 {
	return g.raw / Base
}

// DegreesAndRotations returns Degrees and Rotations as a pair.
func (g Ring360) DegreesAndRotations() (float32, int64) {
	return g.Degrees(), g.Rotations()
}

// GIS returns the position in the geographic ±180 convention, in
// (-180,180].
func (g Ring360) GIS() float32 {
	d := g.Degrees()
	if d > HalfTurn {
		d -= Base
	}
	return d
}

// Add returns the sum of two ring values on the raw values.
func (g Ring360) Add(o Ring360) Ring360 {
	return Ring360{raw: g.raw + o.raw}
}

// Sub returns the difference of two ring values on the raw values.
func (g Ring360) Sub(o Ring360) Ring360 {
	return Ring360{raw: g.raw - o.raw}
}

// Multiply scales the raw value by k.
func (g Ring360) Multiply(k float32) Ring360 {
	return Ring360{raw: g.raw * k}
}

// Divide scales the raw value by 1/k. A zero k follows IEEE 754.
func (g Ring360) Divide(k float32) Ring360 {
	return Ring360{raw: g.raw / k}
}

// Angle returns the shortest signed displacement from g to o in degrees,
// in (-180,180].
func (g Ring360) Angle(o Ring360) float32 {
	return g.AngleDeg(o.Degrees())
}

// AngleDeg is Angle with the target given as a raw degree value.
func (g Ring360) AngleDeg(v float32) float32 {
	delta := math32.Mod(v-g.Degrees(), Base)
	if delta < 0 {
		delta += Base
	}
	if delta > HalfTurn {
		delta -= Base
	}
	return delta
}

// AngleAbs returns the clockwise-only reading from g to o in [0,360).
// AngleAbs(a,b) + AngleAbs(b,a) == 360 unless the positions coincide.
func (g Ring360) AngleAbs(o Ring360) float32 {
	return g.AngleAbsDeg(o.Degrees())
}

// AngleAbsDeg is AngleAbs with the target given as a raw degree value.
func (g Ring360) AngleAbsDeg(v float32) float32 {
	delta := math32.Mod(v-g.Degrees(), Base)
	if delta < 0 {
		delta += Base
	}
	return delta
}

// Radians returns the normalized position in radians, in [0,2π).
func (g Ring360) Radians() float32 {
	return g.Degrees() * (math32.Pi / HalfTurn)
}

// Sin returns the sine of the position.
func (g Ring360) Sin() float32 {
	return math32.Sin(g.Radians())
}

// Cos returns the cosine of the position.
func (g Ring360) Cos() float32 {
	return math32.Cos(g.Radians())
}

// Tan returns the tangent of the position.
func (g Ring360) Tan() float32 {
	return math32.Tan(g.Radians())
}

// String returns the normalized degree value.
func (g Ring360) String() string {
	return strconv.FormatFloat(float64(g.Degrees()), 'f', -1, 32)
}

// Mod360 returns v wrapped into [0,360).
func Mod360(v float32) float32 {
	d := math32.Mod(v, Base)
	if d < 0 {
		d += Base
	}
	return d
}

// Asin returns the inverse sine of ratio in degrees, in [-90,90].
func Asin(ratio float32) float32 {
	return r2d(math32.Asin(ratio))
}

// Acos returns the inverse cosine of ratio in degrees, in [0,180].
func Acos(ratio float32) float32 {
	return r2d(math32.Acos(ratio))
}

// Atan returns the inverse tangent of ratio in degrees, in (-90,90).
func Atan(ratio float32) float32 {
	return r2d(math32.Atan(ratio))
}

func r2d(radians float32) float32 { return radians / math32.Pi * HalfTurn }
