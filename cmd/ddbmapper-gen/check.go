package main

import (
	"flag"
	"fmt"
	"os"
)

// runCheck implements the 'check' command: resolve every mapper and report
// diagnostics, writing nothing. Exits non-zero if any mapper carries a
// fatal diagnostic, so it can gate CI the way the teacher's own check
// subcommand does.
func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ddbmapper-gen check [options]

Validate a directive file against current code; write nothing.

Options:
`)
		fs.PrintDefaults()
	}

	var f sharedFlags

	bindSharedFlags(fs, &f)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	log := newLogger(f.verbose)

	if f.directives == "" {
		fmt.Fprintln(os.Stderr, "Error: -directives flag is required")
		fs.Usage()
		os.Exit(1)
	}

	_, _, plans, err := loadAndResolve(log, &f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printDiagnostics(plans)

	if anyErrors(plans) {
		fmt.Fprintln(os.Stderr, "\ncheck failed: one or more mappers have fatal diagnostics")
		os.Exit(1)
	}

	fmt.Printf("check passed: %d mapper(s) valid\n", len(plans))
}
