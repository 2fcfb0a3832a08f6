package main

import "fmt"

// varName is one of the 26 variable letters A-Z.
type varName byte

func (name varName) String() string { return string(rune(name)) }

func isLetter(b byte) bool { return 'A' <= b && b <= 'Z' }

// parseLetter recognises a bare single-letter variable name, as used by LOOP
// and SET.
func parseLetter(tok string) (varName, bool) {
	if len(tok) != 1 || !isLetter(tok[0]) {
		return 0, false
	}
	return varName(tok[0]), true
}

// parseRef recognises a two character "$X" variable reference. A token of
// that shape whose letter is outside A-Z is an invalidVariableError.
func parseRef(tok string) (name varName, isRef bool, err error) {
	if len(tok) != 2 || tok[0] != '$' {
		return 0, false, nil
	}
	if !isLetter(tok[1]) {
		return 0, true, invalidVariableError(tok)
	}
	return varName(tok[1]), true, nil
}

type valueKind uint8

const (
	noValue valueKind = iota
	numberValue
	colourValue
)

// value holds either a number or a colour, never both.
type value struct {
	kind valueKind
	num  float64
	col  colourCode
}

func number(n float64) value    { return value{kind: numberValue, num: n} }
func colour(c colourCode) value { return value{kind: colourValue, col: c} }

// number returns the numeric payload; colours and unset values read as 0.
func (v value) number() float64 {
	if v.kind == numberValue {
		return v.num
	}
	return 0
}

func (v value) colour() (colourCode, bool) {
	return v.col, v.kind == colourValue
}

func (v value) String() string {
	switch v.kind {
	case numberValue:
		return fmt.Sprint(v.num)
	case colourValue:
		return fmt.Sprintf("colour(%v)", v.col)
	default:
		return "unset"
	}
}

type variable struct {
	inUse bool
	value
	loop *loopBinding
}

// varStore maps letters to their variables, allocating each on first use.
type varStore struct {
	vars map[varName]*variable
}

// get returns the named variable, creating an unused one if necessary.
func (vs *varStore) get(name varName) *variable {
	if v := vs.vars[name]; v != nil {
		return v
	}
	if vs.vars == nil {
		vs.vars = make(map[varName]*variable, 26)
	}
	v := &variable{}
	vs.vars[name] = v
	return v
}

// lookup returns the named variable only if it has been put in use.
func (vs *varStore) lookup(name varName) (*variable, bool) {
	v := vs.vars[name]
	if v == nil || !v.inUse {
		return nil, false
	}
	return v, true
}
