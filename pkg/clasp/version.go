// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clasp

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// noYear marks an unset copyright year.
const noYear = -1

// Author appends a program author. An empty name is ignored.
func (a *App) Author(name string) {
	if name != "" {
		a.authors = append(a.authors, name)
	}
}

// Year sets the year when copyright began. A negative year is ignored.
func (a *App) Year(year int) {
	if year >= 0 {
		a.year = year
	}
}

// Version sets the program version, overwriting the previous one. The
// version starts out as 0.0.0. Negative components are ignored.
func (a *App) Version(major, minor, patch int) {
	if major >= 0 && minor >= 0 && patch >= 0 {
		a.verMajor = major
		a.verMinor = minor
		a.verPatch = patch
	}
}

// SetVersion sets the program version from a semantic version string such
// as "1.2.3" or "v1.2.3". See https://semver.org.
func (a *App) SetVersion(v string) error {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", v, err)
	}
	a.verMajor = int(sv.Major())
	a.verMinor = int(sv.Minor())
	a.verPatch = int(sv.Patch())
	return nil
}

// VersioningInfo sets additional version text, printed after the copyright
// line. An empty string is ignored.
func (a *App) VersioningInfo(info string) {
	if info != "" {
		a.verInfo = info
	}
}

// Synopsis appends a usage line, e.g. "[OPTION]... FILE". The
// interpretation of the text is up to the caller. An empty string is
// ignored.
func (a *App) Synopsis(synopsis string) {
	if synopsis != "" {
		a.synopses = append(a.synopses, synopsis)
	}
}

// Description sets the one-line program description shown in help output.
func (a *App) Description(description string) {
	a.description = description
}

// VersionText renders the version information: the program name and
// version, then a copyright line with the year range, the authors, and any
// additional versioning info.
func (a *App) VersionText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d.%d.%d\n", a.name, a.verMajor, a.verMinor, a.verPatch)

	b.WriteString("Copyright (C) ")
	if a.year != noYear {
		// A single year when it matches the current one, a dashed range
		// otherwise.
		current := time.Now().Year()
		if a.year == current {
			fmt.Fprintf(&b, "%d ", a.year)
		} else {
			fmt.Fprintf(&b, "%d-%d ", a.year, current)
		}
	}
	b.WriteString(strings.Join(a.authors, ", "))
	b.WriteString(".")
	if a.verInfo != "" {
		b.WriteString(" ")
		b.WriteString(a.verInfo)
	}
	b.WriteString("\n")
	return b.String()
}

// PrintVersion writes VersionText to the app's output writer.
func (a *App) PrintVersion() {
	fmt.Fprint(a.out, a.VersionText())
}
