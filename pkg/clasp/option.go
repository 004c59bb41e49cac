// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

import (
	"fmt"
	"io"
	"os"
)

// Option describes a registered command-line option. It is immutable after
// registration and outlives any parse results that reference it.
type Option struct {
	// Short is the one-character form, or 0 when the option has no short
	// form.
	Short byte
	// Long is the word form, invoked with a "--" prefix. Never empty.
	Long string
	// Traits is the compiled behavior of the option.
	Traits Traits
	// ArgName is the display name of the option's argument in help output.
	ArgName string
	// Description is the help text for the option.
	Description string

	// slot receives the argument value when an occurrence carries one.
	slot *string
}

// name returns the option as a user would write it, preferring the long
// form.
func (o *Option) name() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return fmt.Sprintf("-%c", o.Short)
}

// OptionFunc receives one option occurrence per call, in argv order. arg is
// nil when the occurrence carried no argument value.
type OptionFunc func(short byte, long string, arg *string, userData any)

// ArgumentFunc receives one plain (non-option) argument per call, in argv
// order.
type ArgumentFunc func(value string, userData any)

// App is an option registry plus program metadata. The zero value is not
// usable; construct with New. An App must not be shared between concurrent
// parses.
type App struct {
	name        string
	description string
	authors     []string
	year        int
	verMajor    int
	verMinor    int
	verPatch    int
	verInfo     string
	synopses    []string

	opts []*Option

	endOfOptions    bool
	overrideHelp    bool
	overrideVersion bool

	onOption   OptionFunc
	onArgument ArgumentFunc

	out    io.Writer
	errOut io.Writer
}

// New returns an App for the program with the given name. Long-only --help
// and --version options are pre-registered and handled by the built-in
// renderers; see OverrideHelp and OverrideVersion.
func New(name string) *App {
	a := &App{
		name:         name,
		year:         noYear,
		endOfOptions: true,
		out:          os.Stdout,
		errOut:       os.Stderr,
	}
	// Registration of the built-ins cannot fail: the identifiers are
	// fixed and the behavior strings are empty.
	a.Opt(0, "help", "", nil, "show this help and exit")
	a.Opt(0, "version", "", nil, "print version information and exit")
	return a
}

// Opt registers the option -short/--long with the given behavior string. A
// zero short registers a long-only option. If the behavior declares an
// argument, slot must be non-nil; it receives the argument value during
// parsing. A non-empty value pre-set in slot becomes the argument's display
// name for help output (the slot is then cleared), otherwise the display
// name is "ARG".
//
// Duplicate identifiers are permitted; lookup resolves to the first match
// in registration order. A failed registration leaves the App unchanged.
func (a *App) Opt(short byte, long, behavior string, slot *string, description string) (*Option, error) {
	if long == "" {
		return nil, &InvalidIdentifierError{Short: short, Reason: "long identifier must be non-empty"}
	}
	if short != 0 && !isAlnum(short) {
		return nil, &InvalidIdentifierError{
			Short:  short,
			Long:   long,
			Reason: fmt.Sprintf("short identifier %q must be alphanumeric", short),
		}
	}
	t, err := compileBehavior(behavior)
	if err != nil {
		return nil, err
	}
	if t.Arg != ArgNone && slot == nil {
		return nil, &MissingSlotError{Long: long}
	}
	argName := "ARG"
	if slot != nil && *slot != "" {
		argName = *slot
		*slot = ""
	}
	opt := &Option{
		Short:       short,
		Long:        long,
		Traits:      t,
		ArgName:     argName,
		Description: description,
		slot:        slot,
	}
	a.opts = append(a.opts, opt)
	return opt, nil
}

// LongOpt registers a long-only option. See Opt.
func (a *App) LongOpt(long, behavior string, slot *string, description string) (*Option, error) {
	return a.Opt(0, long, behavior, slot, description)
}

// Lookup resolves an option by short identifier if short is nonzero,
// otherwise by exact long identifier. It returns the first match in
// registration order.
func (a *App) Lookup(short byte, long string) (*Option, bool) {
	var o *Option
	if short != 0 {
		o = a.lookupShort(short)
	} else {
		o = a.lookupLong(long)
	}
	return o, o != nil
}

func (a *App) lookupShort(c byte) *Option {
	for _, o := range a.opts {
		if o.Short == c {
			return o
		}
	}
	return nil
}

func (a *App) lookupLong(name string) *Option {
	for _, o := range a.opts {
		if o.Long == name {
			return o
		}
	}
	return nil
}

// OnOption sets the callback invoked for each option occurrence. A nil
// callback means option occurrences are dispatched as no-ops.
func (a *App) OnOption(fn OptionFunc) { a.onOption = fn }

// OnArgument sets the callback invoked for each plain argument. A nil
// callback means plain arguments are dispatched as no-ops.
func (a *App) OnArgument(fn ArgumentFunc) { a.onArgument = fn }

// SetEndOfOptions controls whether a bare "--" token ends option parsing.
// Enabled by default. When disabled, "--" is treated as a plain argument.
func (a *App) SetEndOfOptions(enabled bool) { a.endOfOptions = enabled }

// OverrideHelp diverts --help occurrences from the built-in help renderer
// to the option callback.
func (a *App) OverrideHelp(override bool) { a.overrideHelp = override }

// OverrideVersion diverts --version occurrences from the built-in version
// renderer to the option callback.
func (a *App) OverrideVersion(override bool) { a.overrideVersion = override }

// SetOutput sets the destination for built-in help and version output. The
// default is standard output.
func (a *App) SetOutput(w io.Writer) { a.out = w }

// SetErrorWriter sets the destination for parse diagnostics. The default is
// standard error.
func (a *App) SetErrorWriter(w io.Writer) { a.errOut = w }
