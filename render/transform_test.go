package render

import (
	"math"
	"testing"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

func TestToSVG(t *testing.T) {
	c := &Context{pageHeight: 10}
	c.extents = model.Extents{Xmin: -1, Ymin: 0, Xmax: 9, Ymax: 10, Initialized: true}

	x, y := c.toSVG(model.Point3{X: 0, Y: 0})
	if x != 1 || y != 10 {
		t.Errorf("got (%v,%v), want (1,10)", x, y)
	}
}

func TestToSVGInBlockDefinition(t *testing.T) {
	c := &Context{pageHeight: 10, inBlockDefinition: true}
	c.extents = model.Extents{Xmin: -1, Ymin: 0, Xmax: 9, Ymax: 10, Initialized: true}

	x, y := c.toSVG(model.Point3{X: 3, Y: 4})
	if x != 3 || y != 4 {
		t.Errorf("in-block mode should be identity, got (%v,%v)", x, y)
	}
}

func TestHasNaN(t *testing.T) {
	if hasNaN(1, 2, 3) {
		t.Errorf("finite values should not be NaN")
	}
	if !hasNaN(1, math.NaN()) {
		t.Errorf("NaN should be detected")
	}
	if !hasNaN(math.Inf(1)) {
		t.Errorf("Inf should be detected")
	}
}

func TestLargeArcFlag(t *testing.T) {
	if largeArcFlag(0, math.Pi/2) {
		t.Errorf("quarter circle should not be a large arc")
	}
	if !largeArcFlag(0, math.Pi) {
		t.Errorf("half circle should be a large arc")
	}
}

func TestBulgeArc(t *testing.T) {
	r, large, sweep := bulgeArc(0, 0, 2, 0, 1)
	if large {
		t.Errorf("bulge 1 (semicircle) should not be a large arc")
	}
	if !sweep {
		t.Errorf("positive bulge should sweep CCW-derived (sweep=1)")
	}
	if r <= 0 {
		t.Errorf("radius should be positive, got %v", r)
	}
}

func TestSlabClipHit(t *testing.T) {
	p0, p1, ok := slabClip(model.Point3{X: -5, Y: 5}, model.Point3{X: 1, Y: 0}, 0, 0, 10, 10, math.Inf(-1), math.Inf(1))
	if !ok {
		t.Fatalf("expected intersection")
	}
	if p0.X != 0 || p1.X != 10 {
		t.Errorf("expected clip to x=[0,10], got p0=%v p1=%v", p0, p1)
	}
}

func TestSlabClipMiss(t *testing.T) {
	_, _, ok := slabClip(model.Point3{X: -5, Y: 50}, model.Point3{X: 1, Y: 0}, 0, 0, 10, 10, math.Inf(-1), math.Inf(1))
	if ok {
		t.Errorf("expected no intersection")
	}
}

func TestSlabClipRayForwardOnly(t *testing.T) {
	// RAY from inside the box pointing away: tmin=0 excludes the backward half.
	p0, p1, ok := slabClip(model.Point3{X: 5, Y: 5}, model.Point3{X: 1, Y: 0}, 0, 0, 10, 10, 0, math.Inf(1))
	if !ok {
		t.Fatalf("expected intersection")
	}
	if p0.X != 5 || p1.X != 10 {
		t.Errorf("expected clip to x=[5,10], got p0=%v p1=%v", p0, p1)
	}
}
