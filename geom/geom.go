// Package geom provides the 2D primitives used by the simulation.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D point or displacement in screen pixels.
type Vec = r2.Vec

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Heading returns the unit vector for an angle in radians.
// Screen Y grows downward, so 3π/2 points up the screen.
func Heading(radians float64) Vec {
	return Vec{X: math.Cos(radians), Y: math.Sin(radians)}
}

// Circle is a collision probe. Center is in world coordinates.
type Circle struct {
	Center Vec
	Radius float64
}

// Overlap reports whether two circles touch or intersect.
// Touching circles (distance equal to the sum of radii) count as overlapping.
func Overlap(a, b Circle) bool {
	return Distance(a.Center, b.Center) <= a.Radius+b.Radius
}
