// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clasp implements a command-line option parser driven by small
// declarative "behavior" strings.
//
// An App collects program metadata and registered options, then parses an
// argument vector into an ordered stream of option occurrences and plain
// arguments, checks cross-option constraints, and hands each unit to
// caller-supplied callbacks.
//
// # Basic Usage
//
//	app := clasp.New("minigrep")
//	app.Synopsis("[OPTION]... PATTERN [FILE]...")
//
//	var pattern string
//	app.Opt('e', "regexp", ".", &pattern, "use PATTERN for matching")
//	app.Opt('i', "ignore-case", "*", nil, "ignore case distinctions")
//
//	app.OnArgument(func(value string, userData any) {
//	    // positional arguments, in argv order
//	})
//	if err := app.Parse(os.Args[1:], nil); err != nil {
//	    os.Exit(1)
//	}
//
// # Behavior Strings
//
// The third argument to Opt and LongOpt is a behavior string. It is the one
// textual format callers embed literally, with the grammar (whitespace
// between tokens is ignored):
//
//	behavior   := argPart? quantPart?
//	argPart    := "." "?"? | "*"
//	refs       := (alphanumeric)*
//	quantPart  := "!"? ("@" | "&" | "<") refs
//
// The pieces mean:
//   - "."  the option takes an argument (a result slot is then mandatory)
//   - ".?" the argument is optional
//   - "*"  the option may be clustered with other "*" options, as in -abc
//   - "@"  ANY: at least one referenced option must also be passed
//   - "&"  ALL: every referenced option must also be passed
//   - "<"  ONLY: no option outside this one and its references may be passed
//   - "!"  negates the quantifier's verdict
//
// References are the short-option characters of previously or later
// registered options; they are resolved during parsing, not registration.
// The empty behavior string is valid and means "no argument, no constraint".
// "*" cannot be combined with ".".
//
// For example, ".?" declares an optional argument, "*" a clusterable flag,
// "&ad" requires options -a and -d to be passed too, and "!@ab" forbids
// co-occurrence with either -a or -b.
//
// # Command-Line Conventions
//
// The parser honors POSIX short-flag clustering (-abc), attached short
// arguments (-Ivalue is -I value), GNU long options (--name, --name value),
// the bare "-" stdin convention, and the "--" end-of-options marker
// (enabled by default, see SetEndOfOptions).
//
// Long options named "help" and "version" are pre-registered by New and
// rendered by the built-in help and version printers unless diverted with
// OverrideHelp or OverrideVersion.
//
// # Errors
//
// Registration and parsing return typed errors (MalformedBehaviorError,
// UnknownOptionError, QuantifierError, ...) that can be inspected with
// errors.As. A parse call is all-or-nothing: if tokenization or
// verification fails, no callback runs and a diagnostic is written to the
// app's error writer.
//
// An App is not safe for concurrent use; registration must finish before
// the first Parse call, and Parse calls must be serialized by the caller.
package clasp
