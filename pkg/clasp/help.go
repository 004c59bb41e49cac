// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// defaultHelpWidth is used when the output is not a terminal.
const defaultHelpWidth = 80

// HelpText renders the help message: header, usage lines from the
// registered synopses, and the option table, wrapped to the given width.
func (a *App) HelpText(width int) string {
	if width <= 0 {
		width = defaultHelpWidth
	}
	bold := color.New(color.Bold)

	var b strings.Builder
	b.WriteString(a.name)
	if a.description != "" {
		b.WriteString(" - ")
		b.WriteString(a.description)
	}
	b.WriteString("\n\n")

	b.WriteString(bold.Sprint("USAGE:"))
	b.WriteString("\n")
	if len(a.synopses) == 0 {
		fmt.Fprintf(&b, "    %s [OPTION]...\n", a.name)
	}
	for _, syn := range a.synopses {
		fmt.Fprintf(&b, "    %s %s\n", a.name, syn)
	}
	b.WriteString("\n")

	b.WriteString(bold.Sprint("OPTIONS:"))
	b.WriteString("\n")

	labels := make([]string, len(a.opts))
	maxLabel := 0
	for i, opt := range a.opts {
		labels[i] = optionLabel(opt)
		if w := runewidth.StringWidth(labels[i]); w > maxLabel {
			maxLabel = w
		}
	}
	col := maxLabel + 2
	for i, opt := range a.opts {
		b.WriteString(labels[i])
		if opt.Description == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(strings.Repeat(" ", col-runewidth.StringWidth(labels[i])))
		writeWrapped(&b, opt.Description, col, width)
	}
	return b.String()
}

// optionLabel renders the left column for one option, e.g.
// "    -e, --regexp PATTERN" or "        --help".
func optionLabel(opt *Option) string {
	var b strings.Builder
	if opt.Short != 0 {
		fmt.Fprintf(&b, "    -%c, --%s", opt.Short, opt.Long)
	} else {
		fmt.Fprintf(&b, "        --%s", opt.Long)
	}
	switch opt.Traits.Arg {
	case ArgRequired:
		fmt.Fprintf(&b, " %s", opt.ArgName)
	case ArgOptional:
		fmt.Fprintf(&b, " [%s]", opt.ArgName)
	}
	return b.String()
}

// writeWrapped writes text starting at column col, wrapping words so no
// line exceeds width, with continuation lines indented back to col.
func writeWrapped(b *strings.Builder, text string, col, width int) {
	avail := width - col
	if avail < 16 {
		avail = 16
	}
	line := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if line > 0 && line+1+w > avail {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", col))
			line = 0
		}
		if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += w
	}
	b.WriteString("\n")
}

// PrintHelp writes HelpText to the app's output writer, sized to the
// terminal when the writer is one.
func (a *App) PrintHelp() {
	width := defaultHelpWidth
	if f, ok := a.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	fmt.Fprint(a.out, a.HelpText(width))
}
