package render

import (
	"bytes"
	"encoding/gob"
	"os"
	"strings"
	"testing"

	"github.com/RedRiverSoftware/dwg2svg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGobDocument(t *testing.T, path string, doc *model.Document) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gob.NewEncoder(f).Encode(doc))
}

func TestRenderToWriterNilDocument(t *testing.T) {
	var buf bytes.Buffer
	_, err := RenderToWriter(&buf, nil, Options{})
	assert.ErrorIs(t, err, ErrInvalidDWG)
}

func TestRenderToWriterEndToEnd(t *testing.T) {
	doc := model.NewDocument()
	doc.ModelSpace = doc.NewBlockHeader("*Model_Space", 1)
	line := model.NewLine(model.Point3{X: 0, Y: 0}, model.Point3{X: 10, Y: 10})
	doc.ModelSpace.AddEntity(line)

	var buf bytes.Buffer
	stats, err := RenderToWriter(&buf, doc, Options{})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"`))
	assert.Contains(t, out, "<svg ")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, `<path id="dwg-object-0"`)
	assert.Equal(t, 1, stats.Emitted)
}

func TestRenderToWriterEmitsDefsForReferencedBlocks(t *testing.T) {
	doc := model.NewDocument()
	chair := doc.NewBlockHeader("CHAIR", 5)
	chair.AddEntity(model.NewLine(model.Point3{X: 0, Y: 0}, model.Point3{X: 1, Y: 1}))

	doc.ModelSpace = doc.NewBlockHeader("*Model_Space", 1)
	doc.ModelSpace.AddEntity(model.NewInsert(model.Point3{X: 5, Y: 5}, model.Point3{X: 1, Y: 1, Z: 1}, 0, chair))

	var buf bytes.Buffer
	stats, err := RenderToWriter(&buf, doc, Options{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<defs>")
	assert.Contains(t, out, `id="symbol-5"`)
	assert.Equal(t, 1, stats.Symbols)
}

func TestRenderDataMatchesRenderToWriter(t *testing.T) {
	doc := model.NewDocument()
	doc.ModelSpace = doc.NewBlockHeader("*Model_Space", 1)
	doc.ModelSpace.AddEntity(model.NewCircle(model.Point3{X: 5, Y: 5}, 3))

	data, stats, err := RenderData(doc, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "<circle")
	assert.Equal(t, 1, stats.Emitted)

	var buf bytes.Buffer
	_, err = RenderToWriter(&buf, doc, Options{})
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(data))
}

func TestRenderFileLoadsGobEncodedDocument(t *testing.T) {
	doc := model.NewDocument()
	doc.ModelSpace = doc.NewBlockHeader("*Model_Space", 1)
	doc.ModelSpace.AddEntity(model.NewLine(model.Point3{X: 0, Y: 0}, model.Point3{X: 5, Y: 5}))

	dir := t.TempDir()
	path := dir + "/doc.gob"
	writeGobDocument(t, path, doc)

	data, stats, err := RenderFile(path, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "<path")
	assert.Equal(t, 1, stats.Emitted)
}

func TestRenderFileMissingPathReturnsIOError(t *testing.T) {
	_, _, err := RenderFile("/nonexistent/path.gob", Options{})
	assert.ErrorIs(t, err, ErrIO)
}
