package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroid-shooter/internal/physics"
)

func TestPlotMapsWorldCorners(t *testing.T) {
	c := NewCanvas(21, 10)

	c.Plot(physics.Vec2{X: -1, Y: 1})
	c.Plot(physics.Vec2{X: 1, Y: -1})
	c.Plot(physics.Vec2{})

	assert.True(t, c.Pixel(0, 0), "top-left")
	assert.True(t, c.Pixel(20, 19), "bottom-right")
	assert.True(t, c.Pixel(10, 10), "centre")
	assert.False(t, c.Pixel(-1, 0))
	assert.False(t, c.Pixel(21, 0))

	col, row := c.Cell(physics.Vec2{X: -1, Y: 1})
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)
}

func TestLineAndPolygon(t *testing.T) {
	c := NewCanvas(21, 11)

	c.Line(physics.Vec2{X: -1, Y: 1}, physics.Vec2{X: 1, Y: 1})
	for x := 0; x < 21; x++ {
		require.True(t, c.Pixel(x, 0), "x=%d", x)
	}

	c.Clear()
	square := []physics.Vec2{{X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5}, {X: -0.5, Y: -0.5}}
	c.Polygon(square, false)
	assert.False(t, c.Pixel(10, 11), "outline only")

	c.Polygon(square, true)
	assert.True(t, c.Pixel(10, 11), "filled interior")

	// Degenerate polygons draw nothing.
	c.Clear()
	c.Polygon(square[:2], true)
	assert.False(t, c.Pixel(5, 5))
}

func TestRenderOnlyWritesChanges(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	c := NewCanvas(4, 2)

	c.Plot(physics.Vec2{X: -1, Y: 1})
	c.Render(cw)
	first := cw.Len()
	require.NoError(t, cw.Flush())
	assert.Contains(t, out.String(), string(BlockUpperHalf))
	assert.Positive(t, first)

	c.Render(cw)
	assert.Zero(t, cw.Len(), "unchanged frame")

	c.Clear()
	c.Render(cw)
	require.NoError(t, cw.Flush())
	assert.True(t, strings.HasSuffix(out.String(), "\033[1;1H "))

	c.ForceRedraw()
	c.Render(cw)
	assert.Positive(t, cw.Len())
}

func TestRenderBorderNeedsOffset(t *testing.T) {
	c := NewCanvas(3, 2)

	cw := NewChunkWriter(&bytes.Buffer{}, 0, 0)
	c.RenderBorder(cw)
	assert.Zero(t, cw.Len())

	var out bytes.Buffer
	cw = NewChunkWriter(&out, 1, 1)
	c.RenderBorder(cw)
	require.NoError(t, cw.Flush())
	assert.Contains(t, out.String(), "┌")
	assert.Contains(t, out.String(), "┘")
	assert.Contains(t, out.String(), "│")
}

func TestChunkWriterOffsetAndChunks(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)
	cw.WriteAt(1, 1, "x")
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[4;3Hx", out.String())

	rec := &recordingWriter{}
	cw = NewChunkWriter(rec, 0, 0)
	cw.WriteString(strings.Repeat("a", 3*maxChunkSize+10))
	require.NoError(t, cw.Flush())

	require.Len(t, rec.sizes, 4)
	for _, n := range rec.sizes {
		assert.LessOrEqual(t, n, maxChunkSize)
	}
	assert.Zero(t, cw.Len())
}

type recordingWriter struct {
	sizes []int
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.sizes = append(w.sizes, len(p))
	return len(p), nil
}
