package diagfmt

import (
	"encoding/json"
	"io"
	"sort"

	"htmlint/internal/catalog"
	"htmlint/internal/diag"
)

const sarifSchema = "https://json.schemastore.org/sarif-2.1.0.json"

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID      string `json:"id"`
	HelpURI string `json:"helpUri,omitempty"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// Sarif форматирует диагностики в SARIF формат (v2.1.0).
// Один run на вызов; в driver.rules попадают только правила,
// встретившиеся в результатах.
func Sarif(w io.Writer, bag *diag.Bag, meta SarifRunMeta) error {
	items := bag.Items()

	seen := make(map[string]bool)
	results := make([]sarifResult, 0, len(items))
	for _, d := range items {
		seen[d.RuleID] = true

		level := "warning"
		if d.IsFatal() {
			level = "error"
		}
		res := sarifResult{
			RuleID:  d.RuleID,
			Level:   level,
			Message: sarifMessage{Text: d.Message},
		}
		if d.File != "" {
			res.Locations = []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: d.File},
					Region: sarifRegion{
						StartLine:   d.Position.Start.Line,
						StartColumn: d.Position.Start.Column,
						EndLine:     d.Position.End.Line,
						EndColumn:   d.Position.End.Column,
					},
				},
			}}
		}
		results = append(results, res)
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rules := make([]sarifRule, 0, len(ids))
	for _, id := range ids {
		rule := sarifRule{ID: id}
		// Неизвестное правило даёт нулевую запись, URL у него не подавлен.
		if entry, _ := catalog.Lookup(catalog.CamelID(id)); !entry.SuppressURL {
			rule.HelpURI = catalog.URLFor(id)
		}
		rules = append(rules, rule)
	}

	name := meta.ToolName
	if name == "" {
		name = "htmlint"
	}
	log := sarifLog{
		Schema:  sarifSchema,
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           name,
				Version:        meta.ToolVersion,
				InformationURI: "https://html.spec.whatwg.org/multipage/parsing.html",
				Rules:          rules,
			}},
			Invocations: []sarifInvocation{{
				Arguments:           meta.InvocationArgs,
				ExecutionSuccessful: true,
			}},
			Results: results,
		}},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(log)
}
