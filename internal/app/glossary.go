package app

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"masterg.app/glot/internal/cli"
	"masterg.app/glot/internal/glossary"
)

// runGlossary prints the active glossary table, built-ins merged with the
// overlay file when one is configured.
func runGlossary(args []string) int {
	fs := flag.NewFlagSet("glossary", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	format := fs.String("format", "table", "Output format: table or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, _, code := loadCore(envLoader)
	if code != 0 {
		return code
	}

	table, err := glossary.LoadTable(cfg.GlossaryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load glossary: %v\n", err)
		return 1
	}

	entries := table.Entries()
	switch strings.ToLower(strings.TrimSpace(*format)) {
	case "json":
		payload, err := json.MarshalIndent(map[string]any{
			"count": len(entries),
			"items": entries,
		}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode glossary: %v\n", err)
			return 1
		}
		fmt.Println(string(payload))
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SOURCE\tTARGET")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\n", entry.Source, entry.Target)
		}
		if err := w.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to print glossary: %v\n", err)
			return 1
		}
		fmt.Printf("\n%d terms\n", len(entries))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q: use table or json\n", *format)
		return 2
	}

	return 0
}
