package main

import (
	"bytes"
	"io"
	"strings"
)

// colourCode is the single character a pen leaves in a grid cell; 0 marks an
// empty cell.
type colourCode byte

const (
	noColour colourCode = 0
	black    colourCode = 'K'
	red      colourCode = 'R'
	green    colourCode = 'G'
	blue     colourCode = 'B'
	yellow   colourCode = 'Y'
	cyan     colourCode = 'C'
	magenta  colourCode = 'M'
	white    colourCode = 'W'
)

func (c colourCode) String() string {
	if c == noColour {
		return "none"
	}
	return string(rune(c))
}

var colourWords = map[string]colourCode{
	`"BLACK"`:   black,
	`"RED"`:     red,
	`"GREEN"`:   green,
	`"BLUE"`:    blue,
	`"YELLOW"`:  yellow,
	`"CYAN"`:    cyan,
	`"MAGENTA"`: magenta,
	`"WHITE"`:   white,
}

// colourWord returns the code named by a quoted colour word like "RED"
// (quotes included).
func colourWord(tok string) (colourCode, bool) {
	c, ok := colourWords[tok]
	return c, ok
}

// isWord matches any double-quoted token, valid colour or not.
func isWord(tok string) bool {
	return len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`)
}

// Grid is the fixed-size canvas painted by the turtle. Row 0 is the top.
type Grid struct {
	Width, Height int

	cells []colourCode
}

// NewGrid creates an empty width by height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]colourCode, width*height),
	}
}

// In reports whether (x, y) names a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the colour at (x, y), or noColour outside the grid.
func (g *Grid) At(x, y int) colourCode {
	if !g.In(x, y) {
		return noColour
	}
	return g.cells[y*g.Width+x]
}

// paint colours the cell containing the real-valued point (x, y), truncating
// toward zero; points outside the grid are skipped.
func (g *Grid) paint(x, y float64, c colourCode) bool {
	if x <= -1 || x >= float64(g.Width) || y <= -1 || y >= float64(g.Height) {
		return false
	}
	g.cells[int(y)*g.Width+int(x)] = c
	return true
}

// Row returns row y as text, with a space for every empty cell.
func (g *Grid) Row(y int) string {
	row := make([]byte, g.Width)
	for x := range row {
		if c := g.At(x, y); c != noColour {
			row[x] = byte(c)
		} else {
			row[x] = ' '
		}
	}
	return string(row)
}

// WriteTo writes every row followed by a newline, with no other formatting.
func (g *Grid) WriteTo(w io.Writer) (n int64, err error) {
	var buf bytes.Buffer
	buf.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		buf.WriteString(g.Row(y))
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}
