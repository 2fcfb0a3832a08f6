package main

import (
	"fmt"
	"time"

	"github.com/xyproto/vt"
)

// Display shows the grid while a program draws. Frame is called after every
// line and once more when the program ends.
type Display interface {
	Frame(g *Grid) error
}

// cellCanvas is the part of *vt.Canvas used to paint frames.
type cellCanvas interface {
	Clear()
	WriteRune(x, y uint, fg, bg vt.AttributeColor, r rune)
	Draw()
}

const cellRune = '█'

// termDisplay paints each frame onto a colour terminal and then pauses so
// the drawing can be watched.
type termDisplay struct {
	canvas cellCanvas
	delay  time.Duration
	sleep  func(time.Duration)
}

// newTermDisplay takes over the terminal; Close must be called to restore it.
func newTermDisplay(delay time.Duration) *termDisplay {
	vt.Init()
	c := vt.NewCanvas()
	c.HideCursor()
	return &termDisplay{
		canvas: c,
		delay:  delay,
		sleep:  time.Sleep,
	}
}

func (d *termDisplay) Frame(g *Grid) error {
	d.canvas.Clear()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := g.At(x, y); c != noColour {
				d.canvas.WriteRune(uint(x), uint(y), displayColour(c), vt.DefaultBackground, cellRune)
			}
		}
	}
	d.canvas.Draw()
	if d.delay > 0 && d.sleep != nil {
		d.sleep(d.delay)
	}
	return nil
}

// Close restores the terminal.
func (d *termDisplay) Close() error {
	vt.Close()
	fmt.Print(vt.Stop())
	return nil
}

// displayColour maps a pen colour to its terminal colour; white stands in
// for anything unrecognised.
func displayColour(c colourCode) vt.AttributeColor {
	switch c {
	case black:
		return vt.Black
	case red:
		return vt.Red
	case green:
		return vt.Green
	case blue:
		return vt.Blue
	case yellow:
		return vt.Yellow
	case cyan:
		return vt.Cyan
	case magenta:
		return vt.Magenta
	default:
		return vt.White
	}
}
