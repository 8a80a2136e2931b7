package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 1)

	if got := a.Add(b); got != V(4, 5) {
		t.Errorf("Add() = %v, expected (4, 5)", got)
	}
	if got := a.Sub(b); got != V(2, 3) {
		t.Errorf("Sub() = %v, expected (2, 3)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Length() = %f, expected 5", got)
	}
	if got := V(0, 0).DistanceTo(a); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceTo() = %f, expected 5", got)
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"touching edges", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"apart", Box{0, 0, 10, 10}, Box{0, 20, 10, 10}, false},
		{"contained", Box{0, 0, 32, 32}, Box{8, 8, 4, 4}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAroundAndOverlap(t *testing.T) {
	a := BoxAround(V(16, 16), 16, 16)
	if a.X != 0 || a.Y != 0 || a.W != 32 || a.H != 32 {
		t.Fatalf("BoxAround() = %+v, expected {0 0 32 32}", a)
	}
	if c := a.Center(); c != V(16, 16) {
		t.Errorf("Center() = %v, expected (16, 16)", c)
	}

	b := BoxAround(V(40, 20), 16, 16)
	dx, dy := a.Overlap(b)
	if dx != 8 || dy != 28 {
		t.Errorf("Overlap() = (%f, %f), expected (8, 28)", dx, dy)
	}

	dx, dy = a.Overlap(BoxAround(V(100, 100), 1, 1))
	if dx != 0 || dy != 0 {
		t.Errorf("Overlap() of disjoint boxes = (%f, %f), expected zeros", dx, dy)
	}
}
