package ring360

import "math"

// Conversions between bare float64 degree values and ring values. These
// mirror the Ring360 methods for callers working with plain floats.

// To360 wraps a raw degree value as a Ring360 under the plain 0-360
// convention. The value is stored verbatim, see New.
func To360(v float64) Ring360 {
	return New(v)
}

// To360GIS wraps a ±180 geographic degree value as a Ring360, see
// FromGIS for the rotation counting rule.
func To360GIS(v float64) Ring360 {
	return FromGIS(v)
}

// Mod360 returns v wrapped into [0,360). Unlike math.Mod, negative
// inputs wrap to their positive equivalent: Mod360(-60) is 300.
func Mod360(v float64) float64 {
	d := math.Mod(v, Base)
	if d < 0 {
		d += Base
	}
	return d
}

// Angle360 returns the shortest signed displacement from degree value a
// to degree value b, in (-180,180]. It equals New(a).Angle(New(b)).
func Angle360(a, b float64) float64 {
	return New(a).AngleDeg(b)
}

// Angle360Abs returns the clockwise-only reading from degree value a to
// degree value b, in [0,360). It equals New(a).AngleAbs(New(b)).
func Angle360Abs(a, b float64) float64 {
	return New(a).AngleAbsDeg(b)
}

// Asin returns the inverse sine of ratio in degrees, in [-90,90]. The
// result follows the standard mathematical branch and is not wrapped
// onto the ring.
func Asin(ratio float64) float64 {
	return r2d(math.Asin(ratio))
}

// Acos returns the inverse cosine of ratio in degrees, in [0,180].
func Acos(ratio float64) float64 {
	return r2d(math.Acos(ratio))
}

// Atan returns the inverse tangent of ratio in degrees, in (-90,90).
func Atan(ratio float64) float64 {
	return r2d(math.Atan(ratio))
}

func r2d(radians float64) float64 { return radians / math.Pi * HalfTurn }
