package main

import "context"

// loopBinding is the captured state of a LOOP: the raw item tokens, the token
// span of its body, and the item being replayed.
type loopBinding struct {
	items   []string
	start   int // first body token
	end     int // the END closing the body
	current int
}

// LOOP <letter> OVER { <items> } <statements> END
//
// The body runs once per item with the loop variable bound to that item. The
// body ends at the first END after the item list, even one that belongs to
// a nested LOOP.
func (in *Interp) loop(ctx context.Context) {
	v := in.letter("LOOP")
	v.inUse = true
	in.expect("LOOP", "OVER")

	lb := &loopBinding{items: in.loopItems()}
	lb.start = in.tokens.pos()
	lb.end = in.tokens.find("END", lb.start)
	if lb.end < 0 {
		in.parseFail("LOOP", errMissingEnd)
	}
	v.loop = lb

	defer in.withLogPrefix("  ")()
	for lb.current = 0; lb.current < len(lb.items); lb.current++ {
		item := lb.items[lb.current]
		if !in.bindLoopItem(v, item) {
			in.logf("?", "LOOP skipping unbound item %v", item)
			continue
		}
		in.logf("@", "LOOP iteration %v = %v", lb.current+1, v.value)
		in.tokens.seek(lb.start)
		in.statementList(ctx)
	}
	in.tokens.seek(lb.end + 1)
}

// loopItems consumes a brace-delimited item list, checking that every item
// is a number, variable reference, or quoted word.
func (in *Interp) loopItems() []string {
	in.expect("LOOP", "{")
	var items []string
	for tok := in.tokens.current(); tok != "}"; tok = in.tokens.current() {
		if _, isRef := in.ref(tok); !isRef && !isNumber(tok) && !isWord(tok) {
			in.parseErrorf("LOOP", "invalid loop items")
		}
		items = append(items, tok)
		in.tokens.advance()
	}
	in.tokens.advance()
	return items
}

// bindLoopItem assigns item to the loop variable v: a referenced variable's
// payload is copied, a colour word becomes a colour, a number a number. It
// returns false, leaving v alone, for unknown colour words and references to
// unused variables.
func (in *Interp) bindLoopItem(v *variable, item string) bool {
	if name, isRef := in.ref(item); isRef {
		src, inUse := in.vars.lookup(name)
		if !inUse {
			return false
		}
		if c, isColour := src.colour(); isColour {
			v.value = colour(c)
		} else {
			v.value = number(src.number())
		}
		return true
	}
	if c, ok := colourWord(item); ok {
		v.value = colour(c)
		return true
	}
	if n, ok := parseNumber(item); ok {
		v.value = number(n)
		return true
	}
	return false
}
