package main

import "io"

type Option interface{ apply(in *Interp) }

var defaults = []Option{
	configOption(DefaultConfig),
	promptOption{},
}

func (in *Interp) apply(opts ...Option) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(in)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interp) {
	in.logfn = logfn
}

type programOption struct{ io.Reader }
type promptOption struct {
	io.Reader
	io.Writer
}
type displayOption struct{ Display }
type configOption Config

// Multiple programs are concatenated, in option order, into one token stream.
func (o programOption) apply(in *Interp) {
	in.sources = append(in.sources, o.Reader)
}

func (o promptOption) apply(in *Interp) {
	in.prompt = newPrompter(o.Reader, o.Writer)
}

func (o displayOption) apply(in *Interp) {
	in.display = o.Display
}

func (cfg configOption) apply(in *Interp) {
	in.config = Config(cfg)
}
