// Package draw rasterises world-space shapes onto a terminal using
// half-block characters and writes the result as batched ANSI output.
package draw

import (
	"math"
	"sort"

	"github.com/tomz197/asteroid-shooter/internal/physics"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// cellUnknown marks a cell whose on-screen content is not known, so the
// next Render writes it unconditionally.
const cellUnknown rune = -1

// Point is a position in sub-pixel space.
type Point struct {
	X, Y float64
}

// Canvas is a drawing buffer with 2x vertical resolution: every terminal
// cell holds an upper and a lower sub-pixel. World coordinates [-1,1] on
// both axes (y up) are stretched over the whole canvas.
type Canvas struct {
	cols    int    // Terminal columns
	rows    int    // Terminal rows
	subRows int    // rows * 2
	pixels  []bool // [y*cols + x]

	// What the terminal currently shows per cell, for diffed rendering.
	shown []rune

	// Reusable buffers to reduce allocations
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewCanvas creates a canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas dimensions. Content is cleared and the next
// Render repaints every cell.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols = cols
	c.rows = rows
	c.subRows = rows * 2
	c.pixels = make([]bool, c.subRows*cols)
	c.shown = make([]rune, rows*cols)
	c.ForceRedraw()
}

// ForceRedraw forgets what is on screen, e.g. after the terminal was
// cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.shown {
		c.shown[i] = cellUnknown
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Cols returns the terminal column count.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal row count.
func (c *Canvas) Rows() int { return c.rows }

// toPixel maps a world position to sub-pixel space.
func (c *Canvas) toPixel(v physics.Vec2) Point {
	span := physics.WorldMax - physics.WorldMin
	return Point{
		X: (v.X - physics.WorldMin) / span * float64(c.cols-1),
		Y: (physics.WorldMax - v.Y) / span * float64(c.subRows-1),
	}
}

// Cell converts a world position to a 1-based (col, row) terminal cell on
// the canvas, for text placed next to drawn objects.
func (c *Canvas) Cell(v physics.Vec2) (col, row int) {
	p := c.toPixel(v)
	return int(math.Round(p.X)) + 1, int(math.Round(p.Y))/2 + 1
}

// setPixel sets a sub-pixel; out-of-range coordinates are ignored.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subRows {
		c.pixels[y*c.cols+x] = true
	}
}

// Pixel reports whether a sub-pixel is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.subRows {
		return false
	}
	return c.pixels[y*c.cols+x]
}

// Plot sets the sub-pixel nearest to a world position.
func (c *Canvas) Plot(v physics.Vec2) {
	p := c.toPixel(v)
	c.setPixel(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// Line draws a world-space segment using Bresenham's algorithm.
func (c *Canvas) Line(a, b physics.Vec2) {
	c.line(c.toPixel(a), c.toPixel(b))
}

func (c *Canvas) line(p1, p2 Point) {
	x1, y1 := int(math.Round(p1.X)), int(math.Round(p1.Y))
	x2, y2 := int(math.Round(p2.X)), int(math.Round(p2.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed world-space polygon, optionally filled.
func (c *Canvas) Polygon(points []physics.Vec2, filled bool) {
	if len(points) < 3 {
		return
	}

	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = c.toPixel(p)
	}

	if filled {
		c.fillPolygon(scaled)
	}

	n := len(scaled)
	for i := 0; i < n; i++ {
		c.line(scaled[i], scaled[(i+1)%n])
	}
}

// fillPolygon fills a sub-pixel polygon using the scanline algorithm.
func (c *Canvas) fillPolygon(scaled []Point) {
	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subRows-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// cellRune returns the half-block character for a terminal cell.
func (c *Canvas) cellRune(col, row int) rune {
	top := c.pixels[row*2*c.cols+col]
	bottom := c.pixels[(row*2+1)*c.cols+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// Render writes the cells that changed since the previous Render.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		lastCol := -2
		for col := 0; col < c.cols; col++ {
			ch := c.cellRune(col, row)
			idx := row*c.cols + col
			if c.shown[idx] == ch {
				continue
			}
			c.shown[idx] = ch

			// Adjacent changed cells share one cursor move.
			if col != lastCol+1 {
				cw.MoveCursor(col+1, row+1)
			}
			cw.WriteRune(ch)
			lastCol = col
		}
	}
}

// RenderBorder draws a frame around the canvas when the writer's offset
// leaves room for it.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	offCol, offRow := cw.Offset()
	hasSides := offCol >= 1
	hasTopBottom := offRow >= 1

	if hasTopBottom {
		for _, row := range []int{0, c.rows + 1} {
			cw.MoveCursor(1, row)
			for i := 0; i < c.cols; i++ {
				cw.WriteRune('─')
			}
		}
	}

	if hasSides {
		for row := 1; row <= c.rows; row++ {
			cw.WriteAt(0, row, "│")
			cw.WriteAt(c.cols+1, row, "│")
		}
	}

	if hasSides && hasTopBottom {
		cw.WriteAt(0, 0, "┌")
		cw.WriteAt(c.cols+1, 0, "┐")
		cw.WriteAt(0, c.rows+1, "└")
		cw.WriteAt(c.cols+1, c.rows+1, "┘")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
