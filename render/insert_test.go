package render

import (
	"testing"

	"github.com/RedRiverSoftware/dwg2svg/model"
	"github.com/stretchr/testify/assert"
)

func TestEmitInsertUnresolvedBlockEmitsComment(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	ins := &model.Insert{InsertionPoint: model.Point3{X: 1, Y: 1}, Scale: model.Point3{X: 1, Y: 1}}
	c.emitInsert(ins)

	got := buf.String()
	assert.Contains(t, got, "<!--")
	assert.Contains(t, got, "WRONG INSERT")
}

func TestEmitInsertNoRotationUsesMatrix(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	bh := &model.BlockHeader{Name: "chair", AbsoluteRef: 42}
	ins := &model.Insert{InsertionPoint: model.Point3{X: 1, Y: 1}, Scale: model.Point3{X: 2, Y: 3}, Block: bh}
	c.emitInsert(ins)

	got := buf.String()
	assert.Contains(t, got, `href="#symbol-42"`)
	assert.Contains(t, got, "matrix(2.000000,0,0,-3.000000,")
	assert.Equal(t, bh, c.symbols[42])
}

func TestEmitInsertWithRotationUsesTranslateRotateScale(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	bh := &model.BlockHeader{Name: "door", AbsoluteRef: 7}
	ins := &model.Insert{InsertionPoint: model.Point3{X: 0, Y: 0}, Scale: model.Point3{X: 1, Y: 1}, Rotation: 1.5708, Block: bh}
	c.emitInsert(ins)

	got := buf.String()
	assert.Contains(t, got, "translate(")
	assert.Contains(t, got, "rotate(")
	assert.Contains(t, got, "scale(1.000000,-1.000000)")
}

func TestEmitInsertSkipsInvisible(t *testing.T) {
	c, buf := newTestContext(0, 0, 10, 10)
	bh := &model.BlockHeader{Name: "x", AbsoluteRef: 1}
	ins := &model.Insert{InsertionPoint: model.Point3{X: 0, Y: 0}, Scale: model.Point3{X: 1, Y: 1}, Block: bh}
	ins.Invisible = true
	c.emitInsert(ins)
	assert.Equal(t, 0, buf.Len())
}

func TestBlockEligible(t *testing.T) {
	assert.False(t, blockEligible("*Model_Space"))
	assert.False(t, blockEligible("*model_space"))
	assert.False(t, blockEligible("*Paper_Space"))
	assert.False(t, blockEligible("*Paper_Space1"))
	assert.True(t, blockEligible("chair"))
}

func TestEscapeBlockName(t *testing.T) {
	assert.Equal(t, "a__b", escapeBlockName("a--b"))
}
