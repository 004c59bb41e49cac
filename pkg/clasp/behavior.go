// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

// ArgMode describes whether an option consumes an argument.
type ArgMode int

const (
	// ArgNone means the option takes no argument.
	ArgNone ArgMode = iota
	// ArgRequired means the option must be followed by an argument.
	ArgRequired
	// ArgOptional means the option may be followed by an argument.
	ArgOptional
)

// QuantKind selects the co-occurrence rule checked after tokenization.
type QuantKind int

const (
	// QuantNone applies no co-occurrence rule.
	QuantNone QuantKind = iota
	// QuantAny requires at least one referenced option to be passed.
	QuantAny
	// QuantAll requires every referenced option to be passed.
	QuantAll
	// QuantOnly forbids passing any option outside the owner and its
	// references.
	QuantOnly
)

// Traits is the compiled form of a behavior string.
type Traits struct {
	Arg       ArgMode
	Multiflag bool
	Quant     QuantKind
	Negated   bool
	// Refs holds the short-option characters named by the quantifier, in
	// the order written. They are resolved during verification.
	Refs []byte
}

// compileBehavior parses a behavior string into Traits. See the package
// documentation for the grammar. The empty string is valid.
func compileBehavior(spec string) (Traits, error) {
	var t Traits
	i := 0
	skipSpace(spec, &i)

	// argPart
	if i < len(spec) {
		switch spec[i] {
		case '.':
			t.Arg = ArgRequired
			i++
			skipSpace(spec, &i)
			if i < len(spec) && spec[i] == '?' {
				t.Arg = ArgOptional
				i++
			}
		case '*':
			t.Multiflag = true
			i++
		case '!', '@', '&', '<':
			// no argPart, straight to the quantifier
		default:
			return Traits{}, &MalformedBehaviorError{
				Spec:   spec,
				Reason: "must start with '.', '*', or a quantifier",
			}
		}
	}
	skipSpace(spec, &i)
	if i == len(spec) {
		return t, nil
	}

	// quantPart
	if spec[i] == '!' {
		t.Negated = true
		i++
		skipSpace(spec, &i)
	}
	if i == len(spec) {
		return Traits{}, &MalformedBehaviorError{Spec: spec, Reason: "expected a quantifier after '!'"}
	}
	switch spec[i] {
	case '@':
		t.Quant = QuantAny
	case '&':
		t.Quant = QuantAll
	case '<':
		t.Quant = QuantOnly
	default:
		return Traits{}, &MalformedBehaviorError{
			Spec:   spec,
			Reason: "expected a quantifier ('@', '&', or '<')",
		}
	}
	i++

	// refs
	for ; i < len(spec); i++ {
		c := spec[i]
		if isSpace(c) {
			continue
		}
		if !isAlnum(c) {
			return Traits{}, &MalformedBehaviorError{
				Spec:   spec,
				Reason: "references must be alphanumeric",
			}
		}
		t.Refs = append(t.Refs, c)
	}
	return t, nil
}

func skipSpace(s string, i *int) {
	for *i < len(s) && isSpace(s[*i]) {
		*i++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
