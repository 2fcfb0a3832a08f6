package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/goturtle/internal/fileinput"
)

var promptMessages = map[string]string{
	"FORWARD":  "Turtle doesn't know how far to travel!\n Please tell them how far to go: ",
	"RIGHT":    "Turtle doesn't know which direction to turn!\n Please tell them where to face: ",
	"COLOUR":   "Turtle doesn't know which colour pen to use!\n Please tell them which colour to use (remember to use quotation marks around the colour): ",
	"TRIANGLE": "Turtle doesn't know what size your triangle should be!\n Please tell them what size to draw: ",
	"HEIGHT":   "Turtle doesn't know how high your rectangle should be!\n Please tell them how high to go: ",
	"WIDTH":    "Turtle doesn't know how wide your rectangle should be!\n Please tell them how wide to go: ",
}

// prompter asks the user for a value that a statement left out.
type prompter struct {
	in  fileinput.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{out: out}
	if in != nil {
		p.in.Queue = []io.Reader{in}
	}
	return p
}

// ask prompts for stmt's value until valid accepts an answer token.
func (p *prompter) ask(stmt string, valid func(string) bool) (string, error) {
	mess, ok := promptMessages[stmt]
	if !ok {
		mess = fmt.Sprintf("Turtle needs a value for %v: ", stmt)
	}
	for {
		if p.out != nil {
			if _, err := io.WriteString(p.out, mess); err != nil {
				return "", err
			}
		}
		tok, err := p.in.Scan()
		if err == io.EOF {
			return "", fmt.Errorf("no value given for %v", stmt)
		} else if err != nil {
			return "", err
		}
		if valid(tok.Text) {
			return tok.Text, nil
		}
	}
}
