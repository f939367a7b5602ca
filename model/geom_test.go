package model

import (
	"math"
	"testing"
)

func TestOCSToWCSAxisAligned(t *testing.T) {
	p := OCSToWCS(Point3{X: 3, Y: 4, Z: 5}, Point3{Z: 1})
	want := Point3{X: 3, Y: 4, Z: 5}
	if math.Abs(p.X-want.X) > 1e-9 || math.Abs(p.Y-want.Y) > 1e-9 || math.Abs(p.Z-want.Z) > 1e-9 {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestOCSToWCSNegativeZ(t *testing.T) {
	// Extrusion (0,0,-1): OCS X axis flips relative to WCS X.
	p := OCSToWCS(Point3{X: 1, Y: 0, Z: 0}, Point3{Z: -1})
	if math.Abs(p.X-(-1)) > 1e-9 {
		t.Errorf("X: got %v, want -1", p.X)
	}
}

func TestOCSToWCSArbitraryNormal(t *testing.T) {
	// Non axis-aligned extrusion must not panic and must round-trip the
	// origin to the origin.
	p := OCSToWCS(Point3{}, Point3{X: 0.5, Y: 0.5, Z: 0.70710678})
	if p.X != 0 || p.Y != 0 || p.Z != 0 {
		t.Errorf("origin should map to origin, got %+v", p)
	}
}
