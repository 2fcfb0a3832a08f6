package main

import (
	"context"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// statement is one production of the statement grammar, matched by its
// leading keyword.
type statement struct {
	keyword string
	parse   func(in *Interp, ctx context.Context)
}

// statementTable lists the statement productions in priority order.
var statementTable []statement

var statementKeywords []string

func init() {
	statementTable = []statement{
		{"FORWARD", (*Interp).forward},
		{"RIGHT", (*Interp).right},
		{"LOOP", (*Interp).loop},
		{"COLOUR", (*Interp).colour},
		{"SET", (*Interp).set},
		{"RECTANGLE", (*Interp).rectangle},
		{"TRIANGLE", (*Interp).triangle},
	}
	for _, stmt := range statementTable {
		statementKeywords = append(statementKeywords, stmt.keyword)
	}
}

// program := "START" statementList
func (in *Interp) program(ctx context.Context) {
	if !in.tokens.accept("START") {
		in.parseFail("", errMissingStart)
	}
	in.statementList(ctx)
	in.tokens.advance()
	if !in.tokens.atEnd() {
		in.logf("#", "ignoring %v tokens after END", len(in.tokens.toks)-in.tokens.pos())
	}
}

// statementList := "END" | statement statementList
//
// The closing END is left under the cursor.
func (in *Interp) statementList(ctx context.Context) {
	for in.tokens.current() != "END" {
		in.haltif(ctx.Err())
		if in.tokens.atEnd() {
			in.parseFail("", errMissingEnd)
		}
		if !in.statement(ctx) {
			in.unknownStatement()
		}
	}
}

// statement dispatches on the current keyword, returning false with the
// cursor unchanged if no production matches.
func (in *Interp) statement(ctx context.Context) bool {
	word := in.tokens.current()
	for _, stmt := range statementTable {
		if stmt.keyword == word {
			in.logf(">", "%v", in.tokens.token())
			in.tokens.advance()
			stmt.parse(in, ctx)
			return true
		}
	}
	return false
}

func (in *Interp) unknownStatement() {
	tok := in.tokens.current()
	if suggest := suggestKeyword(tok); suggest != "" {
		in.parseErrorf("", "unknown instruction, did you mean %v?", suggest)
	}
	in.parseErrorf("", "unknown instruction")
}

// suggestKeyword returns the statement keyword closest to tok, or "" if
// none resembles it.
func suggestKeyword(tok string) string {
	if tok == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(tok, statementKeywords)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// letter consumes the single-letter variable name that stmt requires.
func (in *Interp) letter(stmt string) *variable {
	name, ok := parseLetter(in.tokens.current())
	if !ok {
		in.parseErrorf(stmt, "expected a variable letter A-Z")
	}
	in.tokens.advance()
	return in.vars.get(name)
}

// expect consumes word, which stmt requires next.
func (in *Interp) expect(stmt, word string) {
	if !in.tokens.accept(word) {
		in.parseErrorf(stmt, "expected %v", word)
	}
}
