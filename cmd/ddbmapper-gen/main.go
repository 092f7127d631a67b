// Package main provides the CLI entrypoint for ddbmapper-gen.
//
// ddbmapper-gen is a compile-time codegen tool that:
//   - Loads a YAML directive file naming the model types to map
//   - Type-checks the packages those models live in (go/types)
//   - Resolves each mapper's members into a Spec Builder plan
//   - Renders paired ToItem/FromItem methods for every mapper
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

const (
	version = "0.1.0"
	usage   = `ddbmapper-gen - a compile-time DynamoDB item mapper codegen tool

Usage:
  ddbmapper-gen <command> [options]

Commands:
  gen       Generate mappers from a directive file
  check     Validate a directive file against current code; write nothing

Global Options:
  -help     Show help for a command
  -version  Print version information

Examples:
  # Generate mappers declared in mappers.yaml
  ddbmapper-gen gen -directives mappers.yaml -pkg ./store -pkg ./warehouse

  # Validate a directive file without writing generated files
  ddbmapper-gen check -directives mappers.yaml

Run 'ddbmapper-gen <command> -help' for more information on a command.
`
)

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	command := os.Args[1]

	switch command {
	case "-help", "--help", "help":
		fmt.Print(usage)
		os.Exit(0)
	case "-version", "--version", "version":
		fmt.Printf("ddbmapper-gen version %s\n", version)
		os.Exit(0)
	case "gen":
		runGen(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// StringSliceFlag is a flag that can be specified multiple times.
type StringSliceFlag []string

func (s *StringSliceFlag) String() string {
	return strings.Join(*s, ", ")
}

func (s *StringSliceFlag) Set(value string) error {
	*s = append(*s, value)

	return nil
}
