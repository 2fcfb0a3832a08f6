package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Location names a line in an input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Token is a single whitespace-delimited word, along with the Location where
// it started.
type Token struct {
	Location
	Text string
}

func (tok Token) String() string { return fmt.Sprintf("%v %q", tok.Location, tok.Text) }

// LimitError indicates that scanning exceeded either the token count or the
// token size limit of a Scanner.
type LimitError struct {
	Location
	What  string
	Limit int
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("%v: %v limit of %v exceeded", lim.Location, lim.What, lim.Limit)
}

// Scanner splits a Queue of one or more input streams into whitespace
// delimited tokens. A token never spans two streams.
type Scanner struct {
	Queue []io.Reader

	// MaxTokens limits how many tokens may be scanned in total; 0 means no
	// limit.
	MaxTokens int

	// MaxTokenSize limits the byte length of any single token; 0 means no
	// limit.
	MaxTokenSize int

	rr    io.RuneReader
	loc   Location
	count int
}

// Scan returns the next token, or io.EOF once every queued stream has been
// exhausted.
func (sc *Scanner) Scan() (tok Token, err error) {
	var sb strings.Builder
	for {
		r, err := sc.readRune()
		if err != nil {
			return tok, err
		}
		if !unicode.IsSpace(r) && !unicode.IsControl(r) {
			tok.Location = sc.loc
			sb.WriteRune(r)
			break
		}
		if r == '\n' {
			sc.loc.Line++
		}
	}

	for {
		r, _, err := sc.rr.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return tok, err
		}
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			if r == '\n' {
				sc.loc.Line++
			}
			break
		}
		sb.WriteRune(r)
		if limit := sc.MaxTokenSize; limit > 0 && sb.Len() > limit {
			return tok, LimitError{tok.Location, "token size", limit}
		}
	}

	if limit := sc.MaxTokens; limit > 0 && sc.count >= limit {
		return tok, LimitError{tok.Location, "token count", limit}
	}
	sc.count++
	tok.Text = sb.String()
	return tok, nil
}

// All scans every remaining token.
func (sc *Scanner) All() ([]Token, error) {
	var toks []Token
	for {
		tok, err := sc.Scan()
		if err == io.EOF {
			return toks, nil
		} else if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// readRune reads from the current stream, rolling over to the next queued
// stream at EOF.
func (sc *Scanner) readRune() (rune, error) {
	for {
		if sc.rr == nil && !sc.nextIn() {
			return 0, io.EOF
		}
		r, _, err := sc.rr.ReadRune()
		if err == nil {
			return r, nil
		}
		if err != io.EOF {
			return 0, err
		}
		sc.closeIn()
	}
}

func (sc *Scanner) closeIn() {
	if cl, ok := sc.rr.(io.Closer); ok {
		cl.Close()
	}
	sc.rr = nil
}

func (sc *Scanner) nextIn() bool {
	if len(sc.Queue) == 0 {
		return false
	}
	r := sc.Queue[0]
	sc.Queue = sc.Queue[1:]
	sc.rr = newRuneReader(r)
	sc.loc = Location{Name: nameOf(r), Line: 1}
	return true
}

type closingRuneReader struct {
	*bufio.Reader
	io.Closer
}

func newRuneReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	br := bufio.NewReader(r)
	if cl, ok := r.(io.Closer); ok {
		return closingRuneReader{br, cl}
	}
	return br
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader gives r a Name for token locations.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
