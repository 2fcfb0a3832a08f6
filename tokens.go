package main

import "github.com/jcorbin/goturtle/internal/fileinput"

// tokenStream is a loaded program along with a read cursor. Reading at or
// past the end yields the sentinel empty token.
type tokenStream struct {
	toks []fileinput.Token
	cur  int
}

func (ts *tokenStream) token() fileinput.Token {
	if ts.cur < len(ts.toks) {
		return ts.toks[ts.cur]
	}
	var end fileinput.Token
	if n := len(ts.toks); n > 0 {
		end.Location = ts.toks[n-1].Location
	}
	return end
}

func (ts *tokenStream) current() string {
	if ts.cur < len(ts.toks) {
		return ts.toks[ts.cur].Text
	}
	return ""
}

func (ts *tokenStream) atEnd() bool { return ts.cur >= len(ts.toks) }

func (ts *tokenStream) advance() {
	if ts.cur < len(ts.toks) {
		ts.cur++
	}
}

func (ts *tokenStream) advanceBack() {
	if ts.cur > 0 {
		ts.cur--
	}
}

// accept advances past the current token if it is word.
func (ts *tokenStream) accept(word string) bool {
	if ts.atEnd() || ts.current() != word {
		return false
	}
	ts.advance()
	return true
}

func (ts *tokenStream) pos() int { return ts.cur }

func (ts *tokenStream) seek(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(ts.toks):
		pos = len(ts.toks)
	}
	ts.cur = pos
}

// find returns the index of the first word token at or after from, or -1.
func (ts *tokenStream) find(word string, from int) int {
	for i := from; i < len(ts.toks); i++ {
		if ts.toks[i].Text == word {
			return i
		}
	}
	return -1
}
