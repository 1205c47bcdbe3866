package viz

import (
	"math"
	"strings"
)

const brailleBlank = 0x2800

// Braille cells are 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille runes addressed in dot coordinates. A canvas
// of Width x Height cells holds (2·Width) x (4·Height) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// DotWidth is the horizontal resolution in dots.
func (c *Canvas) DotWidth() int { return c.Width * 2 }

// DotHeight is the vertical resolution in dots.
func (c *Canvas) DotHeight() int { return c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, bit rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, pixelMap[y%4][x%2], true
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= bit
	}
}

// Unset clears the dot at (x, y).
func (c *Canvas) Unset(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= bit
	}
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	row, col, bit, ok := c.cell(x, y)
	return ok && c.Grid[row][col]&bit != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a segment with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillDisc lights every dot within radius of (cx, cy).
func (c *Canvas) FillDisc(cx, cy, radius int) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				c.Set(cx+x, cy+y)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Projection maps plane coordinates (AU) onto canvas dots with equal scale
// on both axes. Y grows upwards in the plane and downwards on screen.
type Projection struct {
	Scale  float64 // dots per AU
	MinX   float64
	MaxY   float64
	Margin int
}

// Fit returns a projection that places the box [minX, maxX] x [minY, maxY]
// inside c, keeping a margin of dots on every side.
func Fit(c *Canvas, minX, maxX, minY, maxY float64, margin int) Projection {
	w := float64(c.DotWidth() - 2*margin - 1)
	h := float64(c.DotHeight() - 2*margin - 1)
	spanX := math.Max(maxX-minX, 1e-9)
	spanY := math.Max(maxY-minY, 1e-9)
	scale := math.Max(math.Min(w/spanX, h/spanY), 0)

	// center the box in the unused axis
	padX := (w/scale - spanX) / 2
	padY := (h/scale - spanY) / 2
	if scale == 0 {
		padX, padY = 0, 0
	}
	return Projection{Scale: scale, MinX: minX - padX, MaxY: maxY + padY, Margin: margin}
}

// Dot converts a plane point to dot coordinates.
func (p Projection) Dot(x, y float64) (int, int) {
	dx := p.Margin + int(math.Round((x-p.MinX)*p.Scale))
	dy := p.Margin + int(math.Round((p.MaxY-y)*p.Scale))
	return dx, dy
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
