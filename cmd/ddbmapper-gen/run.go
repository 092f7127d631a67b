package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sr9000dev/ddbmapper/internal/diag"
	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/pipeline"
	"github.com/sr9000dev/ddbmapper/internal/plan"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

// sharedFlags is the flag surface common to gen and check, named after the
// teacher's StringSliceFlag-backed -pkg convention.
type sharedFlags struct {
	packages    StringSliceFlag
	directives  string
	concurrency int
	verbose     bool
}

func bindSharedFlags(fs *flag.FlagSet, f *sharedFlags) {
	fs.Var(&f.packages, "pkg", "Package import path to type-check (can be specified multiple times; default: inferred from the directive file)")
	fs.StringVar(&f.directives, "directives", "", "Path to YAML directive file (required)")
	fs.IntVar(&f.concurrency, "concurrency", pipeline.DefaultConcurrency, "Maximum number of mappers resolved concurrently")
	fs.BoolVar(&f.verbose, "verbose", false, "Enable debug-level logging")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadAndResolve loads the directive file named by f.directives, type-checks
// the packages it names (explicit -pkg flags take precedence over the
// packages inferred from the directive file's model references), and runs
// every declared mapper through internal/pipeline.
func loadAndResolve(log *slog.Logger, f *sharedFlags) (*directive.File, *scan.Scanner, []*plan.MapperPlan, error) {
	if f.directives == "" {
		return nil, nil, nil, fmt.Errorf("-directives flag is required")
	}

	file, err := directive.LoadFile(f.directives)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading directive file: %w", err)
	}

	pkgs := []string(f.packages)
	if len(pkgs) == 0 {
		pkgs = extractPackagesFromDirectives(file)
	}

	if len(pkgs) == 0 {
		return nil, nil, nil, fmt.Errorf("at least one -pkg flag is required, or the directive file's models must be fully package-qualified")
	}

	log.Debug("type-checking packages", "packages", pkgs)

	scanner, err := scan.Load(pkgs...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading packages: %w", err)
	}

	log.Debug("resolving mappers", "count", len(file.Mappers), "concurrency", f.concurrency)

	plans, err := pipeline.Run(context.Background(), scanner, file.Mappers, f.concurrency)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolving mappers: %w", err)
	}

	return file, scanner, plans, nil
}

// extractPackagesFromDirectives collects the distinct package import paths
// named by every mapper's model reference, mirroring the teacher's
// extractPackagesFromMapping auto-detection but for ddbmapper-gen's
// fully-qualified "pkgPath.Type" model references (no relative-path
// normalization is needed, since a model is always import-path qualified).
func extractPackagesFromDirectives(f *directive.File) []string {
	seen := make(map[string]bool)

	var pkgs []string

	for _, m := range f.Mappers {
		i := strings.LastIndex(m.Model, ".")
		if i <= 0 {
			continue
		}

		pkgPath := m.Model[:i]
		if !seen[pkgPath] {
			seen[pkgPath] = true

			pkgs = append(pkgs, pkgPath)
		}
	}

	return pkgs
}

// anyErrors reports whether any plan in the batch carries a fatal diagnostic.
func anyErrors(plans []*plan.MapperPlan) bool {
	for _, p := range plans {
		if !p.Diagnostics.IsValid() {
			return true
		}
	}

	return false
}

// printDiagnostics prints every plan's findings to stderr in mapper
// declaration order (already the deterministic order internal/pipeline
// preserves), warnings before errors within each mapper, matching the
// teacher's printDiagnostics grouping.
func printDiagnostics(plans []*plan.MapperPlan) {
	for _, p := range plans {
		printOne := func(kind string, ds []diag.Diagnostic) {
			for _, d := range ds {
				fmt.Fprintf(os.Stderr, "%s: [%s] %s: %s\n", kind, p.Name, d.Code, d.Message)

				if d.TypePair != "" {
					fmt.Fprintf(os.Stderr, "    type pair: %s\n", d.TypePair)
				}

				if d.FieldPath != "" {
					fmt.Fprintf(os.Stderr, "    field: %s\n", d.FieldPath)
				}
			}
		}

		printOne("warning", p.Diagnostics.Warnings)
		printOne("error", p.Diagnostics.Errors)
	}
}
