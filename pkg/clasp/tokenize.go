// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

// result is one tokenized unit: an option occurrence (with or without an
// argument value) or a plain argument. opt == nil means a plain argument;
// the two are never both absent.
type result struct {
	opt    *Option
	arg    string
	hasArg bool
}

// parseState is the per-invocation mutable state: which options were passed
// and how many occurrences were recorded. It is created fresh by every
// Parse call.
type parseState struct {
	passed      map[*Option]bool
	occurrences int
}

func newParseState() *parseState {
	return &parseState{passed: make(map[*Option]bool)}
}

// tokenizer walks an argument vector left to right and produces results in
// strict argv order.
type tokenizer struct {
	app     *App
	state   *parseState
	results []result

	// awaiting is the option that still needs the next token as its
	// argument, or nil.
	awaiting *Option
	// literalOnly is set once an honored "--" is seen; every later token
	// is a plain argument.
	literalOnly bool
}

func (a *App) tokenize(args []string, st *parseState) ([]result, error) {
	tk := &tokenizer{app: a, state: st}
	for _, tok := range args {
		if err := tk.next(tok); err != nil {
			return nil, err
		}
	}
	if err := tk.finish(); err != nil {
		return nil, err
	}
	return tk.results, nil
}

// next consumes one token.
func (tk *tokenizer) next(tok string) error {
	switch {
	case tk.literalOnly:
		tk.plain(tok)
	case tok == "-":
		// conventional stdin marker
		tk.plain(tok)
	case tok == "--":
		if tk.app.endOfOptions {
			tk.literalOnly = true
			return nil
		}
		tk.plain(tok)
	case len(tok) > 1 && tok[0] == '-':
		return tk.option(tok)
	default:
		tk.plain(tok)
	}
	return nil
}

// finish handles end of input: an option still awaiting a required argument
// is an error; one awaiting an optional argument is recorded without a
// value.
func (tk *tokenizer) finish() error {
	if tk.awaiting == nil {
		return nil
	}
	if tk.awaiting.Traits.Arg == ArgRequired {
		return &MissingArgumentError{Option: tk.awaiting}
	}
	tk.emit(tk.awaiting, "", false)
	tk.awaiting = nil
	return nil
}

// plain handles a non-option token: it resolves a pending awaited argument,
// or becomes a standalone plain-argument result.
func (tk *tokenizer) plain(tok string) {
	if tk.awaiting != nil {
		tk.emit(tk.awaiting, tok, true)
		tk.awaiting = nil
		return
	}
	tk.results = append(tk.results, result{arg: tok})
}

// option handles a token of the form "-x...", "--name".
func (tk *tokenizer) option(tok string) error {
	// An option token can never resolve a pending argument. A pending
	// optional argument is recorded without a value; a required one is an
	// error.
	if tk.awaiting != nil {
		if tk.awaiting.Traits.Arg != ArgOptional {
			return &MissingArgumentError{Option: tk.awaiting}
		}
		tk.emit(tk.awaiting, "", false)
		tk.awaiting = nil
	}

	if tok[1] == '-' {
		return tk.longOption(tok)
	}
	return tk.shortOption(tok)
}

func (tk *tokenizer) longOption(tok string) error {
	opt := tk.app.lookupLong(tok[2:])
	if opt == nil {
		return &UnknownOptionError{Name: tok}
	}
	if opt.Traits.Arg != ArgNone {
		tk.awaiting = opt
		return nil
	}
	tk.emit(opt, "", false)
	return nil
}

func (tk *tokenizer) shortOption(tok string) error {
	opt := tk.app.lookupShort(tok[1])
	if opt == nil {
		return &UnknownOptionError{Name: tok[:2]}
	}
	rest := tok[2:]

	if opt.Traits.Multiflag {
		// A multiflag head demands an all-multiflag tail; each character
		// is one occurrence and none takes an argument.
		cluster := []*Option{opt}
		for i := 0; i < len(rest); i++ {
			o := tk.app.lookupShort(rest[i])
			if o == nil || !o.Traits.Multiflag {
				return &NotSeparableError{Cluster: tok, Offender: rest[i]}
			}
			cluster = append(cluster, o)
		}
		for _, o := range cluster {
			tk.emit(o, "", false)
		}
		return nil
	}

	if rest != "" {
		// Remaining characters are an attached argument.
		if opt.Traits.Arg == ArgNone {
			return &UnexpectedArgumentError{Option: opt, Arg: rest}
		}
		tk.emit(opt, rest, true)
		return nil
	}

	if opt.Traits.Arg != ArgNone {
		tk.awaiting = opt
		return nil
	}
	tk.emit(opt, "", false)
	return nil
}

// emit records one option occurrence, marks the option passed, and writes
// its result slot when an argument value is present.
func (tk *tokenizer) emit(opt *Option, arg string, hasArg bool) {
	tk.results = append(tk.results, result{opt: opt, arg: arg, hasArg: hasArg})
	tk.state.passed[opt] = true
	tk.state.occurrences++
	if hasArg && opt.slot != nil {
		*opt.slot = arg
	}
}
