// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

import (
	"fmt"
	"strings"
)

// InvalidIdentifierError is returned when an option's short or long
// identifier is rejected at registration.
type InvalidIdentifierError struct {
	Short  byte
	Long   string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid option identifier: %s", e.Reason)
}

// MalformedBehaviorError is returned when a behavior string does not match
// the behavior grammar.
type MalformedBehaviorError struct {
	Spec   string
	Reason string
}

func (e *MalformedBehaviorError) Error() string {
	return fmt.Sprintf("malformed behavior %q: %s", e.Spec, e.Reason)
}

// MissingSlotError is returned when a behavior declares an argument but no
// result slot was supplied at registration.
type MissingSlotError struct {
	Long string
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf("option --%s takes an argument but no result slot was given", e.Long)
}

// UnknownOptionError is returned when an argv token names an option that
// was never registered. Name is the token as written (e.g. "-x", "--file").
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %s", e.Name)
}

// MissingArgumentError is returned when an option with a required argument
// reaches an option token or the end of input without one.
type MissingArgumentError struct {
	Option *Option
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("option %s requires an argument", e.Option.name())
}

// UnexpectedArgumentError is returned when an argument is attached to an
// option that takes none.
type UnexpectedArgumentError struct {
	Option *Option
	Arg    string
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("option %s does not take an argument (got %q)", e.Option.name(), e.Arg)
}

// NotSeparableError is returned when a short-option cluster headed by a
// multiflag option contains a character that does not resolve to another
// multiflag option.
type NotSeparableError struct {
	Cluster  string // the token as written, e.g. "-bac"
	Offender byte
}

func (e *NotSeparableError) Error() string {
	return fmt.Sprintf("cannot cluster '%c' in %s: not a combinable flag", e.Offender, e.Cluster)
}

// UnknownReferenceError is returned when a quantifier references a short
// option that was never registered.
type UnknownReferenceError struct {
	Ref    byte
	Option *Option
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("option %s references unknown option -%c", e.Option.name(), e.Ref)
}

// QuantifierError is returned when a passed option's quantifier constraint
// is violated.
type QuantifierError struct {
	Option  *Option
	Kind    QuantKind
	Negated bool
}

func (e *QuantifierError) Error() string {
	name := e.Option.name()
	refs := formatRefs(e.Option.Traits.Refs)
	switch {
	case e.Kind == QuantAny && !e.Negated:
		return fmt.Sprintf("option %s must be passed with at least one of: %s", name, refs)
	case e.Kind == QuantAny && e.Negated:
		return fmt.Sprintf("option %s cannot be passed with any of: %s", name, refs)
	case e.Kind == QuantAll && !e.Negated:
		return fmt.Sprintf("option %s must be passed with all of: %s", name, refs)
	case e.Kind == QuantAll && e.Negated:
		return fmt.Sprintf("option %s cannot be passed with all of: %s", name, refs)
	case e.Kind == QuantOnly && !e.Negated:
		return fmt.Sprintf("option %s can only be passed with: %s", name, refs)
	default: // QuantOnly, negated
		return fmt.Sprintf("option %s cannot be passed with only: %s", name, refs)
	}
}

func formatRefs(refs []byte) string {
	parts := make([]string, 0, len(refs))
	for _, c := range refs {
		parts = append(parts, fmt.Sprintf("-%c", c))
	}
	return strings.Join(parts, ", ")
}
