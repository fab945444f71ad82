package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"htmlint/internal/catalog"
	"htmlint/internal/config"
)

var explainCmd = &cobra.Command{
	Use:   "explain <code>",
	Short: "Show templates, link and configured severity for one rule",
	Long:  "Explain a rule: what the diagnostic says, where the HTML standard documents it, and how the nearest htmlint.toml treats it. Accepts both wire (missing-doctype) and normalized (missingDoctype) spellings.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func runExplain(_ *cobra.Command, args []string) error {
	id := catalog.CamelID(strings.TrimSpace(args[0]))
	entry, ok := catalog.Lookup(id)
	if !ok {
		return fmt.Errorf("unknown rule %q", args[0])
	}
	code := catalog.HyphenID(id)

	// Строгость берём из ближайшего манифеста, как это сделал бы check
	cfg, err := config.Discover(".")
	if err != nil {
		return err
	}
	severity := cfg.Severities.Resolve(id)

	width := 80
	if isTerminal(os.Stdout) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
			width = w
		}
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n\n", code, id)
	if entry.Reason != "" {
		fmt.Fprintln(os.Stdout, indentWrap(entry.Reason, width))
	}
	if entry.Description != "" {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, indentWrap("note: "+entry.Description, width))
	}
	if entry.Reason == "" && entry.Description == "" {
		fmt.Fprintln(os.Stdout, "  (no templates recorded)")
	}
	if strings.Contains(entry.Description, "%c") || strings.Contains(entry.Description, "%x") {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, indentWrap("The %c and %x placeholders expand against the checked document: %c quotes the character at the reported offset, %x prints its code point in hex.", width))
	}

	fmt.Fprintln(os.Stdout)
	if _, configured := cfg.Severities[id]; configured {
		fmt.Fprintf(os.Stdout, "severity: %s (configured)\n", severity)
	} else {
		fmt.Fprintf(os.Stdout, "severity: %s (default)\n", severity)
	}
	if entry.SuppressURL {
		fmt.Fprintln(os.Stdout, "link:     (no spec anchor)")
	} else {
		fmt.Fprintf(os.Stdout, "link:     %s\n", catalog.URLFor(code))
	}
	return nil
}

// indentWrap переносит текст по ширине терминала с отступом в два пробела.
func indentWrap(text string, width int) string {
	wrapped := wordwrap.String(text, width-2)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
