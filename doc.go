/* Package main: goturtle, a turtle graphics interpreter

A turtle program is a sequence of whitespace separated words. It begins with
START and ends with END, and every statement between them moves the turtle,
turns it, changes its pen, or assigns a variable:

	START
	  COLOUR "RED"
	  SET A ( 3 4 + )
	  LOOP C OVER { "GREEN" "BLUE" "YELLOW" }
	    COLOUR $C
	    FORWARD $A
	    RIGHT 120
	  END
	  RECTANGLE HEIGHT 4 WIDTH 6
	  TRIANGLE 5
	END

Section 1: the canvas

The turtle draws on a grid of cells, 51 wide and 33 high unless configured
otherwise. It starts in the centre cell, facing up, holding a white pen.
Headings are degrees counter-clockwise from rightward; y grows downward, so a
turtle facing 90 moves toward row 0.

Every move paints a straight line from where the turtle was to where it ends
up. The line paints the cell the turtle starts in and every cell it passes
through, but not the one it stops on; the next line picks up from there.
Cells outside the grid are skipped, while the turtle itself may wander off
the canvas and come back.

Section 2: statements

	FORWARD <value>    move and draw
	RIGHT <value>      turn clockwise by that many degrees
	COLOUR <colour>    change pen, one of "BLACK" "RED" "GREEN" "BLUE"
	                   "YELLOW" "CYAN" "MAGENTA" "WHITE"; unknown colours
	                   leave the pen alone
	SET <letter> ( <postfix> )
	RECTANGLE HEIGHT <value> WIDTH <value>
	TRIANGLE <value>
	LOOP <letter> OVER { <items> } <statements> END

A value is a number, a variable reference like $A, or missing. A missing
value is asked for on the terminal until a valid one is typed. Referencing a
variable that has never been set makes the statement do nothing.

RECTANGLE draws up, right, down, then left, starting and finishing where the
turtle stands. TRIANGLE draws two legs at right angles rising to the right,
closes them with a slightly longer base, and ends facing the same way it
started.

Section 3: variables and SET

There are 26 variables, A through Z. Each holds a number or a colour but not
both. SET evaluates a postfix expression:

	SET A ( 1 2 + 4 * )    A = (1 + 2) * 4
	SET B ( $A 2 / )       B = A / 2

Operators are + - * and /, each written as its own word; "-5" is the number
negative five. Dividing by anything that truncates to zero is an error. An
expression that yields a colour, as in SET P ( $C ), copies the colour.

Section 4: loops

LOOP binds its letter to each item in turn and runs its body once per item.
Items are numbers, colour words, or variable references whose current value
is copied. The body runs up to the first END after the item list. Loops
therefore do not nest as written: an inner loop's END also ends the outer
loop's body, and the outer loop's END is left to close whatever statement
list encloses it.

Section 5: running

	goturtle [flags] program.ttl            draw on the terminal
	goturtle [flags] program.ttl out.txt    write the grid to out.txt

The terminal display redraws after every line and pauses between frames.
File output has one line per row, with a letter for each painted cell (K R G
B Y C M W) and a space for each empty one. Flags:

	-config file.yml  canvas size, limits, and frame delay
	-delay 250ms      pause after each displayed frame
	-timeout 10s      give up after this long
	-trace            log every statement as it runs

A configuration file looks like:

	canvas:
	  width: 51
	  height: 33
	limits:
	  tokens: 1000
	  token_size: 100
	  stack: 100
	display:
	  frame_delay: 1s

*/
package main
