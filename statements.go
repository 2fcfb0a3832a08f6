package main

import "context"

// FORWARD <value>
func (in *Interp) forward(ctx context.Context) {
	if d, ok := in.scalar("FORWARD"); ok {
		in.turtle.distance = d
		in.line()
	}
}

// RIGHT <value> turns clockwise.
func (in *Interp) right(ctx context.Context) {
	if a, ok := in.scalar("RIGHT"); ok {
		in.turtle.angle -= a
	}
}

// COLOUR <value>
func (in *Interp) colour(ctx context.Context) {
	if c, ok := in.penColour(); ok {
		in.turtle.pen = c
	}
}

// SET <letter> ( <postfix> )
func (in *Interp) set(ctx context.Context) {
	dest := in.letter("SET")
	dest.inUse = true
	in.expect("SET", "(")
	start := in.tokens.pos()
	in.postfix()
	in.tokens.seek(start)
	in.evalPostfix(dest)
	in.logf("=", "SET -> %v", dest.value)
}

// RECTANGLE HEIGHT <value> WIDTH <value>
func (in *Interp) rectangle(ctx context.Context) {
	in.expect("RECTANGLE", "HEIGHT")
	height, hok := in.scalar("HEIGHT")
	in.expect("RECTANGLE", "WIDTH")
	width, wok := in.scalar("WIDTH")
	if hok && wok {
		in.drawRectangle(height, width)
	}
}

// TRIANGLE <value>
func (in *Interp) triangle(ctx context.Context) {
	if size, ok := in.scalar("TRIANGLE"); ok {
		in.drawTriangle(size)
	}
}

// line draws from the turtle's position along its heading, then shows the
// grid on any display.
func (in *Interp) line() {
	in.turtle.drawLine(in.grid)
	in.logf("~", "line (%v,%v) -> (%v,%v) pen %v",
		in.turtle.oldX, in.turtle.oldY, in.turtle.x, in.turtle.y, in.turtle.pen)
	if in.display != nil {
		in.haltif(in.display.Frame(in.grid))
	}
}

// drawRectangle draws up, right, down and left from the turtle's position,
// then restores its heading.
func (in *Interp) drawRectangle(height, width float64) {
	prev := in.turtle.angle
	for _, side := range [4]struct{ angle, distance float64 }{
		{headingUp, height},
		{headingRight, width},
		{headingDown, height},
		{headingLeft, width},
	} {
		in.turtle.angle = side.angle
		in.turtle.distance = side.distance
		in.line()
	}
	in.turtle.angle = prev
}

// drawTriangle draws a 45 degree leg up and right, turns 90 degrees to come
// back down, then closes along the base with a leg one cell longer. The
// heading is restored afterward.
func (in *Interp) drawTriangle(size float64) {
	prev := in.turtle.angle
	in.turtle.distance = size
	in.turtle.angle = headingUp + headingUp/2
	in.line()
	in.turtle.angle += headingUp
	in.line()
	in.turtle.distance++
	in.turtle.angle += headingUp + headingUp/2
	in.line()
	in.turtle.distance--
	in.turtle.angle = prev
}
