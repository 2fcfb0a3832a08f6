package main

import (
	"math"
	"strconv"
)

// parseNumber accepts finite floating point literals; NaN, infinities, and
// out of range values are not numbers.
func parseNumber(tok string) (float64, bool) {
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func isNumber(tok string) bool {
	_, ok := parseNumber(tok)
	return ok
}

func isColourWord(tok string) bool {
	_, ok := colourWord(tok)
	return ok
}

// ref recognises a variable reference at the current token, halting on an
// invalid letter.
func (in *Interp) ref(tok string) (varName, bool) {
	name, isRef, err := parseRef(tok)
	in.haltif(err)
	return name, isRef
}

// scalar resolves the numeric argument of stmt. A number literal or variable
// reference is consumed; anything else is left for the next statement and the
// value is asked for instead. Referencing an unused variable yields ok=false,
// making the statement a no-op.
func (in *Interp) scalar(stmt string) (n float64, ok bool) {
	tok := in.tokens.current()
	if name, isRef := in.ref(tok); isRef {
		in.tokens.advance()
		v, inUse := in.vars.lookup(name)
		if !inUse {
			in.logf("?", "%v $%v is not in use", stmt, name)
			return 0, false
		}
		return v.number(), true
	}
	if n, isNum := parseNumber(tok); isNum {
		in.tokens.advance()
		return n, true
	}
	answer, err := in.prompt.ask(stmt, isNumber)
	in.haltif(err)
	n, _ = parseNumber(answer)
	return n, true
}

// penColour resolves the argument of COLOUR: a quoted colour word, a
// reference to a colour variable, or an asked-for colour word. Unknown colour
// words and references to unused or numeric variables leave the pen alone.
func (in *Interp) penColour() (colourCode, bool) {
	tok := in.tokens.current()
	if name, isRef := in.ref(tok); isRef {
		in.tokens.advance()
		if v, inUse := in.vars.lookup(name); inUse {
			return v.colour()
		}
		return noColour, false
	}
	if isWord(tok) {
		in.tokens.advance()
		return colourWord(tok)
	}
	answer, err := in.prompt.ask("COLOUR", isColourWord)
	in.haltif(err)
	return colourWord(answer)
}
