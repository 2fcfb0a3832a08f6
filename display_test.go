package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xyproto/vt"
)

type testCell struct {
	r  rune
	fg vt.AttributeColor
}

type testCanvas struct {
	clears, draws int
	cells         map[[2]uint]testCell
}

func (tc *testCanvas) Clear() {
	tc.clears++
	tc.cells = make(map[[2]uint]testCell)
}

func (tc *testCanvas) WriteRune(x, y uint, fg, bg vt.AttributeColor, r rune) {
	tc.cells[[2]uint{x, y}] = testCell{r, fg}
}

func (tc *testCanvas) Draw() { tc.draws++ }

func TestTermDisplay(t *testing.T) {
	var tc testCanvas
	var slept []time.Duration
	d := termDisplay{
		canvas: &tc,
		delay:  time.Second,
		sleep:  func(d time.Duration) { slept = append(slept, d) },
	}

	g := NewGrid(3, 2)
	g.paint(0, 0, red)
	g.paint(2, 1, white)
	assert.NoError(t, d.Frame(g))
	assert.Equal(t, map[[2]uint]testCell{
		{0, 0}: {cellRune, vt.Red},
		{2, 1}: {cellRune, vt.White},
	}, tc.cells)

	g.paint(1, 1, blue)
	assert.NoError(t, d.Frame(g))
	assert.Len(t, tc.cells, 3, "each frame repaints the whole grid")

	assert.Equal(t, 2, tc.clears)
	assert.Equal(t, 2, tc.draws)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, slept)

	d.delay = 0
	assert.NoError(t, d.Frame(g))
	assert.Len(t, slept, 2, "no pause without a delay")
}

func TestDisplayColour(t *testing.T) {
	assert.Equal(t, vt.Red, displayColour(red))
	assert.Equal(t, vt.Green, displayColour(green))
	assert.Equal(t, vt.Blue, displayColour(blue))
	assert.Equal(t, vt.Yellow, displayColour(yellow))
	assert.Equal(t, vt.Cyan, displayColour(cyan))
	assert.Equal(t, vt.Magenta, displayColour(magenta))
	assert.Equal(t, vt.Black, displayColour(black))
	assert.Equal(t, vt.White, displayColour(white))
	assert.Equal(t, vt.White, displayColour('Q'), "unknown codes draw white")
}
