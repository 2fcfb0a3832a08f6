package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jcorbin/goturtle/internal/flushio"
	"github.com/jcorbin/goturtle/internal/logio"
	"github.com/jcorbin/goturtle/internal/panicerr"
)

const usage = "usage: goturtle [flags] <program.ttl> [output.txt]"

func main() {
	log := logio.New(os.Stderr)
	runMain(context.Background(), log, os.Args[1:])
	os.Exit(log.ExitCode())
}

func runMain(ctx context.Context, log *logio.Logger, args []string) {
	flags := flag.NewFlagSet("goturtle", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), usage)
		flags.PrintDefaults()
	}

	var (
		configPath string
		timeout    time.Duration
		delay      time.Duration
		trace      bool
	)
	flags.StringVar(&configPath, "config", "", "read canvas size and limits from a YAML file")
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.DurationVar(&delay, "delay", DefaultConfig.FrameDelay, "pause after each displayed frame")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	if err := flags.Parse(args); errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		log.Errorf("%v", err)
		return
	}

	cfg := DefaultConfig
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			log.Errorf("%v", err)
			return
		}
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "delay" {
			cfg.FrameDelay = delay
		}
	})

	if n := flags.NArg(); n < 1 || n > 2 {
		log.Errorf(usage)
		return
	}
	programPath, outputPath := flags.Arg(0), flags.Arg(1)

	program, err := os.Open(programPath)
	if err != nil {
		log.Errorf("cannot read program: %v", err)
		return
	}
	defer program.Close()

	opts := []Option{
		WithConfig(cfg),
		WithProgram(program),
		WithPrompt(os.Stdin, os.Stdout),
	}
	if trace {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		opts = append(opts, WithLogf(func(mess string, args ...interface{}) {
			zl.Debug().Msgf(mess, args...)
		}))
	}
	if outputPath == "" {
		display := newTermDisplay(cfg.FrameDelay)
		defer display.Close()
		opts = append(opts, WithDisplay(display))
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	in := New(opts...)
	if err := in.Run(ctx); err != nil {
		logRunError(log, err, trace)
		return
	}
	if outputPath != "" {
		log.ErrorIf(writeGrid(outputPath, in.Grid()))
	}
}

// logRunError reports a failed run; with tracing on, a recovered panic also
// logs the stack it was recovered from.
func logRunError(log *logio.Logger, err error, trace bool) {
	log.Errorf("%v", err)
	if trace && panicerr.IsPanic(err) {
		log.Leveledf("TRACE")("%s", panicerr.PanicStack(err))
	}
}

func writeGrid(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	wf := flushio.NewWriteFlusher(f)
	if _, err := g.WriteTo(wf); err != nil {
		f.Close()
		return err
	}
	return flushio.Close(wf, f)
}
