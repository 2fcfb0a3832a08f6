package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcorbin/goturtle/internal/fileinput"
)

// halt aborts the run with err; Run recovers it and returns err to the
// caller.
func (in *Interp) halt(err error) {
	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		in.logf("#", "halt error: %v", err)
	}()
	panic(haltError{err})
}

func (in *Interp) haltif(err error) {
	if err != nil {
		in.halt(err)
	}
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}

var (
	errDivideByZero   = errors.New("division by zero")
	errStackOverflow  = errors.New("stack overflow")
	errStackUnderflow = errors.New("stack underflow")
	errMissingEnd     = errors.New("missing END")
	errMissingStart   = errors.New("program must begin with START")
)

// parseError reports a statement whose keyword matched but whose following
// tokens did not fit its grammar.
type parseError struct {
	fileinput.Token
	stmt string
	mess string
	err  error
}

func (pe parseError) Error() string {
	var sb strings.Builder
	if pe.Name != "" {
		fmt.Fprintf(&sb, "%v: ", pe.Location)
	}
	if pe.stmt != "" {
		fmt.Fprintf(&sb, "%v: ", pe.stmt)
	}
	switch {
	case pe.mess != "":
		sb.WriteString(pe.mess)
	case pe.err != nil:
		sb.WriteString(pe.err.Error())
	}
	if pe.Text == "" {
		sb.WriteString(", got end of program")
	} else {
		fmt.Fprintf(&sb, ", got %q", pe.Text)
	}
	return sb.String()
}

func (pe parseError) Unwrap() error { return pe.err }

// invalidVariableError is a $ reference whose letter is not in A-Z.
type invalidVariableError string

func (tok invalidVariableError) Error() string {
	return fmt.Sprintf("invalid variable %q, please use an uppercase letter from A-Z", string(tok))
}

// parseErrorf halts with a parseError at the current token.
func (in *Interp) parseErrorf(stmt, mess string, args ...interface{}) {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	in.halt(parseError{Token: in.tokens.token(), stmt: stmt, mess: mess})
}

// parseFail halts with a parseError at the current token, wrapping err.
func (in *Interp) parseFail(stmt string, err error) {
	in.halt(parseError{Token: in.tokens.token(), stmt: stmt, err: err})
}
