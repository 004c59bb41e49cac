// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command minigrep is a small grep clone demonstrating the clasp library:
// option registration with behavior strings, conflict quantifiers, and the
// built-in help and version handling.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"

	"github.com/claspdev/clasp/pkg/clasp"
)

type config struct {
	pattern    string
	ignoreCase bool
	invert     bool
	countOnly  bool
	quiet      bool
	files      []string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("minigrep: ")

	app := clasp.New("minigrep")
	app.Author("The clasp authors")
	app.Year(2025)
	app.Version(1, 0, 0)
	app.VersioningInfo("Distributed under a BSD-style license.")
	app.Synopsis("[OPTION]... PATTERN [FILE]...")
	app.Description("search for PATTERN in each FILE (or standard input)")

	pattern := "PATTERN"
	if _, err := app.Opt('e', "regexp", ".", &pattern, "use PATTERN for matching"); err != nil {
		log.Fatal(err)
	}
	must := func(short byte, long, behavior, desc string) {
		if _, err := app.Opt(short, long, behavior, nil, desc); err != nil {
			log.Fatal(err)
		}
	}
	must('i', "ignore-case", "*", "ignore case distinctions in PATTERN")
	must('v', "invert-match", "*", "select non-matching lines")
	// -c and -q are mutually exclusive ways to suppress normal output.
	must('c', "count", "*!@q", "print only a count of matching lines")
	must('q', "quiet", "*!@c", "suppress all normal output")

	app.OnOption(func(short byte, long string, arg *string, userData any) {
		cfg := userData.(*config)
		switch long {
		case "regexp":
			if arg != nil {
				cfg.pattern = *arg
			}
		case "ignore-case":
			cfg.ignoreCase = true
		case "invert-match":
			cfg.invert = true
		case "count":
			cfg.countOnly = true
		case "quiet":
			cfg.quiet = true
		}
	})
	app.OnArgument(func(value string, userData any) {
		cfg := userData.(*config)
		if cfg.pattern == "" {
			cfg.pattern = value
			return
		}
		cfg.files = append(cfg.files, value)
	})

	cfg := &config{}
	if err := app.Parse(os.Args[1:], cfg); err != nil {
		os.Exit(2)
	}
	if cfg.pattern == "" {
		// --help or --version with no search requested
		return
	}

	expr := cfg.pattern
	if cfg.ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		log.Fatalf("bad pattern: %v", err)
	}

	matched, err := run(cfg, re)
	if err != nil {
		log.Fatal(err)
	}
	if !matched {
		os.Exit(1)
	}
}

func run(cfg *config, re *regexp.Regexp) (matched bool, err error) {
	if len(cfg.files) == 0 {
		cfg.files = []string{"-"}
	}
	prefix := len(cfg.files) > 1

	for _, name := range cfg.files {
		var r io.Reader
		if name == "-" {
			r = os.Stdin
			name = "(standard input)"
		} else {
			f, err := os.Open(name)
			if err != nil {
				return matched, err
			}
			defer f.Close()
			r = f
		}
		n, err := scan(r, re, cfg, name, prefix)
		if err != nil {
			return matched, fmt.Errorf("%s: %w", name, err)
		}
		if n > 0 {
			matched = true
			if cfg.quiet {
				return true, nil
			}
		}
		if cfg.countOnly {
			if prefix {
				fmt.Printf("%s:%d\n", name, n)
			} else {
				fmt.Println(n)
			}
		}
	}
	return matched, nil
}

func scan(r io.Reader, re *regexp.Regexp, cfg *config, name string, prefix bool) (int, error) {
	count := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if re.MatchString(line) == cfg.invert {
			continue
		}
		count++
		if cfg.countOnly || cfg.quiet {
			continue
		}
		if prefix {
			fmt.Printf("%s:%s\n", name, line)
		} else {
			fmt.Println(line)
		}
	}
	if err := sc.Err(); err != nil {
		return count, err
	}
	return count, nil
}
