package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/goturtle/internal/fileinput"
	"github.com/jcorbin/goturtle/internal/panicerr"
)

// Interp parses and runs a single turtle program, painting onto its Grid.
type Interp struct {
	logging

	config  Config
	sources []io.Reader
	prompt  *prompter
	display Display

	tokens tokenStream
	vars   varStore
	stack  operandStack
	turtle turtle
	grid   *Grid
}

// New creates an interpreter; it does nothing until Run is called.
func New(opts ...Option) *Interp {
	var in Interp
	in.apply(opts...)
	in.grid = NewGrid(in.config.Width, in.config.Height)
	in.turtle = newTurtle(in.grid)
	in.stack.limit = in.config.StackLimit
	return &in
}

// Run loads every program source and executes it. Parse errors, runtime
// errors, and display failures are returned; a program that reaches its
// closing END returns nil.
func (in *Interp) Run(ctx context.Context) error {
	err := panicerr.Recover("turtle", func() error {
		in.run(ctx)
		return nil
	})
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	return err
}

// Grid returns the canvas painted by the program.
func (in *Interp) Grid() *Grid { return in.grid }

func (in *Interp) run(ctx context.Context) {
	sc := fileinput.Scanner{
		Queue:        in.sources,
		MaxTokens:    in.config.MaxTokens,
		MaxTokenSize: in.config.MaxTokenSize,
	}
	toks, err := sc.All()
	in.haltif(err)
	in.tokens = tokenStream{toks: toks}
	in.logf("#", "loaded %v tokens", len(toks))

	in.program(ctx)

	if in.display != nil {
		in.haltif(in.display.Frame(in.grid))
	}
}

func WithProgram(r io.Reader) Option             { return programOption{r} }
func WithPrompt(r io.Reader, w io.Writer) Option { return promptOption{r, w} }
func WithDisplay(d Display) Option               { return displayOption{d} }
func WithConfig(cfg Config) Option               { return configOption(cfg) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
