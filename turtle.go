package main

import "math"

// Canonical headings, in degrees counter-clockwise from rightward.
const (
	headingRight = 0
	headingUp    = 90
	headingLeft  = 180
	headingDown  = 270
)

// turtle is the pen's position and heading on the grid. Positions are real
// valued, but only ever move by whole cells.
type turtle struct {
	x, y       float64
	oldX, oldY float64
	angle      float64
	distance   float64
	pen        colourCode
}

// newTurtle places a white pen at the centre of g, facing up.
func newTurtle(g *Grid) turtle {
	return turtle{
		x:     float64(g.Width / 2),
		y:     float64(g.Height / 2),
		angle: headingUp,
		pen:   white,
	}
}

// advance moves distance along the current heading, remembering the prior
// position. Each axis moves by the truncated projection; y grows downward.
func (t *turtle) advance() {
	rad := t.angle * (math.Pi / 180)
	t.oldX, t.oldY = t.x, t.y
	t.x += math.Trunc(math.Cos(rad) * t.distance)
	t.y -= math.Trunc(math.Sin(rad) * t.distance)
}

// drawLine advances the turtle and paints the cells along the way with a
// simple DDA: max(|dx|, |dy|) equal steps, painting the point at the start of
// each step. A line of no steps paints the turtle's own cell. Cells outside g
// are skipped.
func (t *turtle) drawLine(g *Grid) {
	t.advance()
	dx, dy := t.x-t.oldX, t.y-t.oldY
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		g.paint(t.x, t.y, t.pen)
		return
	}

	xInc, yInc := dx/steps, dy/steps
	x, y := t.oldX, t.oldY
	for i := 0.0; i < steps; i++ {
		if !g.paint(x, y, t.pen) && (leaving(x, xInc, g.Width) || leaving(y, yInc, g.Height)) {
			break
		}
		x += xInc
		y += yInc
	}
}

// leaving reports whether a coordinate is outside [0, size) and will never
// come back given its increment.
func leaving(v, inc float64, size int) bool {
	return v <= -1 && inc <= 0 || v >= float64(size) && inc >= 0
}
