// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

// verify checks the quantifier constraint of every option occurrence in the
// result sequence. It runs once per parse call, after tokenization has
// succeeded in full, and stops at the first violation.
func (a *App) verify(results []result, st *parseState) error {
	for _, r := range results {
		if r.opt == nil {
			continue
		}
		if err := a.verifyOption(r.opt, st); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) verifyOption(opt *Option, st *parseState) error {
	t := opt.Traits
	if t.Quant == QuantNone {
		return nil
	}

	refs := make([]*Option, 0, len(t.Refs))
	for _, c := range t.Refs {
		ro := a.lookupShort(c)
		if ro == nil {
			return &UnknownReferenceError{Ref: c, Option: opt}
		}
		refs = append(refs, ro)
	}

	var verdict bool
	switch t.Quant {
	case QuantAny:
		for _, ro := range refs {
			if st.passed[ro] {
				verdict = true
				break
			}
		}
	case QuantAll:
		verdict = true
		for _, ro := range refs {
			if !st.passed[ro] {
				verdict = false
				break
			}
		}
	case QuantOnly:
		// Every option passed anywhere in the call must be the owner or
		// one of its references.
		allowed := map[*Option]bool{opt: true}
		for _, ro := range refs {
			allowed[ro] = true
		}
		verdict = true
		for o, passed := range st.passed {
			if passed && !allowed[o] {
				verdict = false
				break
			}
		}
	}
	if t.Negated {
		verdict = !verdict
	}
	if !verdict {
		return &QuantifierError{Option: opt, Kind: t.Quant, Negated: t.Negated}
	}
	return nil
}
