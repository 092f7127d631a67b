package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sr9000dev/ddbmapper/internal/render"
)

// runGen implements the 'gen' command: resolve every mapper and write its
// generated file into its model's own package directory.
func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: ddbmapper-gen gen [options]

Generate mappers from a directive file.

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

	_, scanner, plans, err := loadAndResolve(log, &f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printDiagnostics(plans)

	files, renderErrs := render.Render(plans)
	for _, e := range renderErrs {
		fmt.Fprintf(os.Stderr, "Error: %v\n", e)
	}

	if len(renderErrs) > 0 {
		os.Exit(1)
	}

	for _, file := range files {
		dir, err := scanner.PackageDir(file.ModelPkgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", file.Path, err)
			os.Exit(1)
		}

		path := filepath.Join(dir, file.Path)

		if err := os.WriteFile(path, file.Source, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}

		log.Info("wrote mapper", "path", path)
	}

	fmt.Printf("Generated %d file(s)\n", len(files))
}
