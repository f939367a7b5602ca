package model

import "testing"

func TestExtentsAdd(t *testing.T) {
	var e Extents
	if e.Initialized {
		t.Fatalf("zero Extents should not be initialized")
	}

	e.Add(5, 10)
	if !e.Initialized {
		t.Fatalf("Extents should be initialized after first Add")
	}
	if e.Xmin != 5 || e.Xmax != 5 || e.Ymin != 10 || e.Ymax != 10 {
		t.Errorf("first Add: got (%v,%v,%v,%v), want (5,5,10,10)", e.Xmin, e.Ymin, e.Xmax, e.Ymax)
	}

	e.Add(-1, 20)
	if e.Xmin != -1 || e.Ymax != 20 {
		t.Errorf("second Add: got xmin=%v ymax=%v, want xmin=-1 ymax=20", e.Xmin, e.Ymax)
	}
}

func TestExtentsMergeUninitialized(t *testing.T) {
	var e Extents
	e.Add(0, 0)
	e.Add(10, 10)

	var other Extents // never initialized
	e.Merge(other)

	if e.Xmax != 10 || e.Ymax != 10 {
		t.Errorf("merging an uninitialized Extents should be a no-op, got xmax=%v ymax=%v", e.Xmax, e.Ymax)
	}
}

func TestExtentsWidthHeight(t *testing.T) {
	e := Extents{Xmin: -5, Xmax: 5, Ymin: 0, Ymax: 20, Initialized: true}
	if e.Width() != 10 {
		t.Errorf("Width: got %v, want 10", e.Width())
	}
	if e.Height() != 20 {
		t.Errorf("Height: got %v, want 20", e.Height())
	}
}

func TestLayerVisible(t *testing.T) {
	cases := []struct {
		name   string
		layer  *Layer
		wantOK bool
	}{
		{"nil layer is visible", nil, true},
		{"plain layer is visible", &Layer{Name: "0"}, true},
		{"off layer is hidden", &Layer{Name: "X", Off: true}, false},
		{"frozen layer is hidden", &Layer{Name: "X", Frozen: true}, false},
	}
	for _, c := range cases {
		if got := c.layer.Visible(); got != c.wantOK {
			t.Errorf("%s: Visible() = %v, want %v", c.name, got, c.wantOK)
		}
	}
}

func TestNewDocumentAndBlockHeader(t *testing.T) {
	doc := NewDocument()
	bh := doc.NewBlockHeader("MY_BLOCK", 0x2A)

	if len(doc.Blocks) != 1 || doc.Blocks[0] != bh {
		t.Fatalf("NewBlockHeader did not register the block header")
	}

	line := NewLine(Point3{}, Point3{X: 1, Y: 1})
	bh.AddEntity(line)
	if line.Index != 0 {
		t.Errorf("first AddEntity should stamp Index 0, got %d", line.Index)
	}
	circle := NewCircle(Point3{}, 5)
	bh.AddEntity(circle)
	if circle.Index != 1 {
		t.Errorf("second AddEntity should stamp Index 1, got %d", circle.Index)
	}
}
