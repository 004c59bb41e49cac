// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// summarize flattens a result sequence for comparison: "--name" for a bare
// occurrence, "--name=value" for one with an argument, "arg:value" for a
// plain argument.
func summarize(results []result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		switch {
		case r.opt == nil:
			out = append(out, "arg:"+r.arg)
		case r.hasArg:
			out = append(out, r.opt.name()+"="+r.arg)
		default:
			out = append(out, r.opt.name())
		}
	}
	return out
}

// clusterApp registers three multiflag options and one plain flag.
func clusterApp(t *testing.T) *App {
	t.Helper()
	app := New("test")
	for _, reg := range []struct {
		short byte
		long  string
		spec  string
	}{
		{'x', "xray", "*"},
		{'y', "yankee", "*"},
		{'z', "zulu", "*"},
		{'p', "plain", ""},
	} {
		if _, err := app.Opt(reg.short, reg.long, reg.spec, nil, ""); err != nil {
			t.Fatalf("Opt(%q) error = %v", reg.long, err)
		}
	}
	return app
}

func TestTokenizeClusterEquivalence(t *testing.T) {
	// All presentations must succeed and mark x, y, z passed.
	inputs := [][]string{
		{"-xyz"},
		{"-x", "-y", "-z"},
		{"-zxy"},
	}
	for _, args := range inputs {
		app := clusterApp(t)
		st := newParseState()
		results, err := app.tokenize(args, st)
		if err != nil {
			t.Errorf("tokenize(%v) error = %v", args, err)
			continue
		}
		if len(results) != 3 {
			t.Errorf("tokenize(%v) produced %d results, want 3", args, len(results))
		}
		for _, c := range []byte("xyz") {
			opt := app.lookupShort(c)
			if !st.passed[opt] {
				t.Errorf("tokenize(%v): option -%c not marked passed", args, c)
			}
		}
		if st.occurrences != 3 {
			t.Errorf("tokenize(%v) occurrences = %d, want 3", args, st.occurrences)
		}
	}
}

func TestTokenizeClusterRejection(t *testing.T) {
	app := clusterApp(t)
	_, err := app.tokenize([]string{"-xp"}, newParseState())
	var nse *NotSeparableError
	if !errors.As(err, &nse) {
		t.Fatalf("tokenize(-xp) error = %v, want NotSeparableError", err)
	}
	if nse.Offender != 'p' {
		t.Errorf("Offender = %q, want %q", nse.Offender, byte('p'))
	}
	if nse.Cluster != "-xp" {
		t.Errorf("Cluster = %q, want %q", nse.Cluster, "-xp")
	}
}

func TestTokenizeClusterUnknownCharacter(t *testing.T) {
	app := clusterApp(t)
	_, err := app.tokenize([]string{"-xq"}, newParseState())
	var nse *NotSeparableError
	if !errors.As(err, &nse) {
		t.Fatalf("tokenize(-xq) error = %v, want NotSeparableError", err)
	}
}

func TestTokenizeAttachedArgument(t *testing.T) {
	// -fvalue and --file value must parse identically.
	for _, args := range [][]string{
		{"-fvalue"},
		{"--file", "value"},
		{"-f", "value"},
	} {
		app := New("test")
		var file string
		if _, err := app.Opt('f', "file", ".", &file, ""); err != nil {
			t.Fatalf("Opt() error = %v", err)
		}
		results, err := app.tokenize(args, newParseState())
		if err != nil {
			t.Fatalf("tokenize(%v) error = %v", args, err)
		}
		want := []string{"--file=value"}
		if diff := cmp.Diff(want, summarize(results)); diff != "" {
			t.Errorf("tokenize(%v) mismatch (-want +got):\n%s", args, diff)
		}
		if file != "value" {
			t.Errorf("tokenize(%v): slot = %q, want %q", args, file, "value")
		}
	}
}

func TestTokenizeOptionalArgument(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     []string
		wantSlot string
	}{
		{
			name:     "value supplied",
			args:     []string{"-A", "5"},
			want:     []string{"--accept=5"},
			wantSlot: "5",
		},
		{
			name:     "attached value",
			args:     []string{"-A5"},
			want:     []string{"--accept=5"},
			wantSlot: "5",
		},
		{
			name: "end of input leaves slot unset",
			args: []string{"-A"},
			want: []string{"--accept"},
		},
		{
			name: "following option leaves slot unset",
			args: []string{"-A", "-p"},
			want: []string{"--accept", "--plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := New("test")
			var slot string
			if _, err := app.Opt('A', "accept", ".?", &slot, ""); err != nil {
				t.Fatalf("Opt() error = %v", err)
			}
			if _, err := app.Opt('p', "plain", "", nil, ""); err != nil {
				t.Fatalf("Opt() error = %v", err)
			}
			results, err := app.tokenize(tt.args, newParseState())
			if err != nil {
				t.Fatalf("tokenize(%v) error = %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, summarize(results)); diff != "" {
				t.Errorf("results mismatch (-want +got):\n%s", diff)
			}
			if slot != tt.wantSlot {
				t.Errorf("slot = %q, want %q", slot, tt.wantSlot)
			}
		})
	}
}

func TestTokenizeMissingArgument(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "end of input", args: []string{"-f"}},
		{name: "followed by short option", args: []string{"-f", "-p"}},
		{name: "followed by long option", args: []string{"-f", "--plain"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := New("test")
			var file string
			app.Opt('f', "file", ".", &file, "")
			app.Opt('p', "plain", "", nil, "")
			_, err := app.tokenize(tt.args, newParseState())
			var mae *MissingArgumentError
			if !errors.As(err, &mae) {
				t.Fatalf("tokenize(%v) error = %v, want MissingArgumentError", tt.args, err)
			}
			if mae.Option.Long != "file" {
				t.Errorf("Option = %s, want --file", mae.Option.name())
			}
		})
	}
}

func TestTokenizeUnknownOption(t *testing.T) {
	app := New("test")
	for _, args := range [][]string{{"-q"}, {"--quux"}, {"--help=now"}} {
		_, err := app.tokenize(args, newParseState())
		var uoe *UnknownOptionError
		if !errors.As(err, &uoe) {
			t.Errorf("tokenize(%v) error = %v, want UnknownOptionError", args, err)
		}
	}
}

func TestTokenizeUnexpectedArgument(t *testing.T) {
	app := New("test")
	app.Opt('p', "plain", "", nil, "")
	_, err := app.tokenize([]string{"-pvalue"}, newParseState())
	var uae *UnexpectedArgumentError
	if !errors.As(err, &uae) {
		t.Fatalf("tokenize(-pvalue) error = %v, want UnexpectedArgumentError", err)
	}
	if uae.Arg != "value" {
		t.Errorf("Arg = %q, want %q", uae.Arg, "value")
	}
}

func TestTokenizeStdinMarker(t *testing.T) {
	app := New("test")
	var file string
	app.Opt('f', "file", ".", &file, "")

	// Bare "-" is a plain argument, and resolves a pending argument first.
	results, err := app.tokenize([]string{"-", "-f", "-"}, newParseState())
	if err != nil {
		t.Fatalf("tokenize error = %v", err)
	}
	want := []string{"arg:-", "--file=-"}
	if diff := cmp.Diff(want, summarize(results)); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeEndOfOptions(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		app := New("test")
		app.Opt('a', "apple", "*", nil, "")
		results, err := app.tokenize([]string{"-a", "--", "-a"}, newParseState())
		if err != nil {
			t.Fatalf("tokenize error = %v", err)
		}
		// The second -a is a literal argument; the -- itself is consumed.
		want := []string{"--apple", "arg:-a"}
		if diff := cmp.Diff(want, summarize(results)); diff != "" {
			t.Errorf("results mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		app := New("test")
		app.Opt('a', "apple", "*", nil, "")
		app.SetEndOfOptions(false)
		results, err := app.tokenize([]string{"-a", "--", "-a"}, newParseState())
		if err != nil {
			t.Fatalf("tokenize error = %v", err)
		}
		// The -- token itself becomes a literal argument.
		want := []string{"--apple", "arg:--", "--apple"}
		if diff := cmp.Diff(want, summarize(results)); diff != "" {
			t.Errorf("results mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("resolves pending argument", func(t *testing.T) {
		app := New("test")
		var file string
		app.Opt('f', "file", ".", &file, "")
		results, err := app.tokenize([]string{"-f", "--", "-x"}, newParseState())
		if err != nil {
			t.Fatalf("tokenize error = %v", err)
		}
		// The first literal token after -- still resolves the pending
		// argument.
		want := []string{"--file=-x"}
		if diff := cmp.Diff(want, summarize(results)); diff != "" {
			t.Errorf("results mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTokenizeOrderPreserved(t *testing.T) {
	app := New("test")
	var file string
	app.Opt('f', "file", ".", &file, "")
	app.Opt('v', "verbose", "*", nil, "")

	results, err := app.tokenize([]string{"one", "-v", "two", "-f", "three", "four"}, newParseState())
	if err != nil {
		t.Fatalf("tokenize error = %v", err)
	}
	want := []string{"arg:one", "--verbose", "arg:two", "--file=three", "arg:four"}
	if diff := cmp.Diff(want, summarize(results)); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}
