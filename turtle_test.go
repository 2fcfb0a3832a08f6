package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTurtle(t *testing.T) {
	tu := newTurtle(NewGrid(51, 33))
	assert.Equal(t, 25.0, tu.x)
	assert.Equal(t, 16.0, tu.y)
	assert.Equal(t, 90.0, tu.angle)
	assert.Equal(t, white, tu.pen)
}

func TestTurtle_advance(t *testing.T) {
	tu := turtle{x: 10, y: 10, angle: 45, distance: 3}
	tu.advance()
	assert.Equal(t, [4]float64{10, 10, 12, 8}, [4]float64{tu.oldX, tu.oldY, tu.x, tu.y},
		"each axis moves by its truncated projection")

	tu.angle, tu.distance = 180, 4
	tu.advance()
	assert.Equal(t, [2]float64{8, 8}, [2]float64{tu.x, tu.y})

	tu.angle, tu.distance = 90, -2
	tu.advance()
	assert.Equal(t, [2]float64{8, 10}, [2]float64{tu.x, tu.y}, "negative distances move backward")
}

func TestTurtle_drawLine(t *testing.T) {
	g := NewGrid(5, 5)
	tu := turtle{x: 0, y: 4, angle: 45, distance: 5, pen: red}
	tu.drawLine(g)
	assert.Equal(t, [2]float64{3, 1}, [2]float64{tu.x, tu.y})
	assert.Equal(t, []string{
		"     ",
		"     ",
		"  R  ",
		" R   ",
		"R    ",
	}, []string{g.Row(0), g.Row(1), g.Row(2), g.Row(3), g.Row(4)},
		"the end point is left for the next line")

	tu = turtle{x: 1, y: 1, angle: 90, pen: green}
	tu.drawLine(g)
	assert.Equal(t, green, g.At(1, 1), "zero length lines paint the current cell")

	tu = turtle{x: -3, y: -3, angle: 90, pen: blue}
	tu.drawLine(g)
	assert.Equal(t, noColour, g.At(0, 0), "off grid points are not painted")
}

func TestLeaving(t *testing.T) {
	assert.True(t, leaving(-1, -1, 5))
	assert.True(t, leaving(-1, 0, 5))
	assert.False(t, leaving(-1, 1, 5), "coming back")
	assert.True(t, leaving(5, 1, 5))
	assert.False(t, leaving(5, -1, 5), "coming back")
	assert.False(t, leaving(2, 1, 5), "still inside")
}
