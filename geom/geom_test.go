package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{
			name: "concentric",
			a:    Circle{Center: V(10, 10), Radius: 1},
			b:    Circle{Center: V(10, 10), Radius: 1},
			want: true,
		},
		{
			name: "exactly touching",
			a:    Circle{Center: V(0, 0), Radius: 3},
			b:    Circle{Center: V(5, 0), Radius: 2},
			want: true,
		},
		{
			name: "touching on a diagonal",
			a:    Circle{Center: V(0, 0), Radius: 2},
			b:    Circle{Center: V(3, 4), Radius: 3},
			want: true,
		},
		{
			name: "just apart",
			a:    Circle{Center: V(0, 0), Radius: 3},
			b:    Circle{Center: V(5.001, 0), Radius: 2},
			want: false,
		},
		{
			name: "zero radius point inside",
			a:    Circle{Center: V(100, 100), Radius: 38},
			b:    Circle{Center: V(110, 90), Radius: 0},
			want: true,
		},
		{
			name: "enemy and bullet far apart",
			a:    Circle{Center: V(52.5, 52.5), Radius: 38},
			b:    Circle{Center: V(300, 700), Radius: 8},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlap(tc.a, tc.b); got != tc.want {
				t.Errorf("Overlap(a, b) = %v, want %v", got, tc.want)
			}
			if got := Overlap(tc.b, tc.a); got != tc.want {
				t.Errorf("Overlap(b, a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlapMatchesDistance(t *testing.T) {
	// Sweep one circle across another and compare against the raw inequality.
	a := Circle{Center: V(0, 0), Radius: 8}
	for x := -60.0; x <= 60; x += 0.5 {
		b := Circle{Center: V(x, x/2), Radius: 38}
		want := math.Hypot(x, x/2) <= a.Radius+b.Radius
		if got := Overlap(a, b); got != want {
			t.Errorf("x=%f: Overlap = %v, want %v", x, got, want)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a, b := V(-3, 7), V(9, -2)
	if !scalar.EqualWithinAbs(Distance(a, b), 15, 1e-12) {
		t.Errorf("Distance = %f, want 15", Distance(a, b))
	}
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance not symmetric: %f vs %f", Distance(a, b), Distance(b, a))
	}
}

func TestHeading(t *testing.T) {
	up := Heading(270 * math.Pi / 180)
	if !scalar.EqualWithinAbs(up.X, 0, 1e-12) || !scalar.EqualWithinAbs(up.Y, -1, 1e-12) {
		t.Errorf("Heading(270°) = (%f, %f), want (0, -1)", up.X, up.Y)
	}
}
