// Package app implements the glot CLI commands.
package app

import (
	"fmt"
	"os"
	"strings"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "serve":
		return runServe(args[1:])
	case "once":
		return runOnce(args[1:])
	case "http":
		return runHTTP(args[1:])
	case "health":
		return runHealth(args[1:])
	case "glossary":
		return runGlossary(args[1:])
	case "validate":
		return runValidate(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "glot CLI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  glot <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  serve     Serve line-delimited JSON requests over stdin/stdout")
	fmt.Fprintln(os.Stderr, "  once      Translate a single JSON request read from stdin")
	fmt.Fprintln(os.Stderr, "  http      Start the HTTP facade")
	fmt.Fprintln(os.Stderr, "  health    Ping the inference sidecar (and the cache database if configured)")
	fmt.Fprintln(os.Stderr, "  glossary  Print the active glossary table")
	fmt.Fprintln(os.Stderr, "  validate  Validate request JSON files against the wire schema")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use \"glot <command> -h\" for command-specific flags.")
}
