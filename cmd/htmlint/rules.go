package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"htmlint/internal/catalog"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List every known rule code",
	Long:  "List all rule codes the catalog knows, with their documentation anchors where the HTML standard enumerates them.",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type rulePayload struct {
	Code string `json:"code"`
	URL  string `json:"url,omitempty"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	switch format {
	case "pretty":
		for _, code := range catalog.Codes() {
			entry, _ := catalog.Lookup(catalog.CamelID(code))
			if entry.SuppressURL {
				fmt.Fprintf(os.Stdout, "%-50s (no spec anchor)\n", code)
				continue
			}
			fmt.Fprintf(os.Stdout, "%-50s %s\n", code, catalog.URLFor(code))
		}
		return nil
	case "json":
		payload := make([]rulePayload, 0, catalog.Len())
		for _, code := range catalog.Codes() {
			entry, _ := catalog.Lookup(catalog.CamelID(code))
			p := rulePayload{Code: code}
			if !entry.SuppressURL {
				p.URL = catalog.URLFor(code)
			}
			payload = append(payload, p)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
