// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

import (
	"fmt"

	"github.com/fatih/color"
)

// Parse tokenizes args (the argument vector without the program name),
// verifies cross-option constraints, and dispatches the results to the
// registered callbacks in strict argv order, passing userData through.
//
// Parse is all-or-nothing: if tokenization or verification fails, no
// callback runs, a diagnostic is written to the app's error writer, and the
// typed error is returned. Callbacks execute synchronously; Parse returns
// only after the last one has.
func (a *App) Parse(args []string, userData any) error {
	st := newParseState()
	results, err := a.tokenize(args, st)
	if err == nil {
		err = a.verify(results, st)
	}
	if err != nil {
		fmt.Fprintln(a.errOut, color.RedString("%s: %v", a.name, err))
		return err
	}
	a.dispatch(results, userData)
	return nil
}

// dispatch walks the verified results in order. Occurrences of the help and
// version options go to the built-in renderers unless overridden; all other
// units go to the caller's callbacks. A nil callback is a no-op.
func (a *App) dispatch(results []result, userData any) {
	for _, r := range results {
		if r.opt == nil {
			if a.onArgument != nil {
				a.onArgument(r.arg, userData)
			}
			continue
		}
		switch {
		case r.opt.Long == "help" && !a.overrideHelp:
			a.PrintHelp()
		case r.opt.Long == "version" && !a.overrideVersion:
			a.PrintVersion()
		default:
			if a.onOption == nil {
				continue
			}
			var arg *string
			if r.hasArg {
				v := r.arg
				arg = &v
			}
			a.onOption(r.opt.Short, r.opt.Long, arg, userData)
		}
	}
}
