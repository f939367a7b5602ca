package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/RedRiverSoftware/dwg2svg/model"
)

func newTestContext(xmin, ymin, xmax, ymax float64) (*Context, *bytes.Buffer) {
	var buf bytes.Buffer
	c := newContext(Options{})
	c.w = newFragmentWriter(&buf)
	c.extents = model.Extents{Xmin: xmin, Ymin: ymin, Xmax: xmax, Ymax: ymax, Initialized: true}
	c.pageHeight = ymax - ymin
	c.pageWidth = xmax - xmin
	return c, &buf
}

func TestEmitLineEndToEnd(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	line := model.NewLine(model.Point3{X: 0, Y: 0}, model.Point3{X: 10, Y: 10})
	line.Color = model.ACIColor(7)
	c.emitLine(line)

	got := buf.String()
	want := `<path id="dwg-object-0" d="M 0.000000,10.000000 L 10.000000,0.000000" style="fill:none;stroke:white;stroke-width:0.10px" />` + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitCircleEndToEnd(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	circle := model.NewCircle(model.Point3{X: 5, Y: 5}, 5)
	c.emitCircle(circle)

	got := buf.String()
	if !strings.Contains(got, `cx="5.000000"`) || !strings.Contains(got, `cy="5.000000"`) || !strings.Contains(got, `r="5.000000"`) {
		t.Errorf("got %q, missing expected center/radius", got)
	}
}

func TestEmitLineSkipsInvisible(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	line := model.NewLine(model.Point3{}, model.Point3{X: 1, Y: 1})
	line.Invisible = true
	c.emitLine(line)
	if buf.Len() != 0 {
		t.Errorf("expected no output for invisible entity, got %q", buf.String())
	}
}

func TestEmitCircleSkipsZeroRadius(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	c.emitCircle(model.NewCircle(model.Point3{}, 0))
	if buf.Len() != 0 {
		t.Errorf("expected no output for zero-radius circle, got %q", buf.String())
	}
}

func TestEmitSolidDrawOrder(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	s := model.NewSolid(
		model.Point2{X: 0, Y: 0},
		model.Point2{X: 1, Y: 0},
		model.Point2{X: 0, Y: 1},
		model.Point2{X: 1, Y: 1},
	)
	c.emitSolid(s)

	got := buf.String()
	// Draw order 1,2,4,3 means the path visits corners[0],[1],[3],[2].
	if !strings.Contains(got, "M 0.000000,10.000000 L 1.000000,10.000000 L 1.000000,9.000000 L 0.000000,9.000000 Z") {
		t.Errorf("unexpected draw order: %q", got)
	}
}
