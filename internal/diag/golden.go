package diag

import (
	"fmt"
	"sort"
	"strings"
)

// FormatGolden renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files: sorted deterministically,
// multi-line messages collapsed, one "level ruleId name message" line per
// diagnostic. Returns the empty string for an empty input.
func FormatGolden(diags []*Diagnostic) string {
	sorted := make([]*Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i], sorted[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Position.Start.Offset != dj.Position.Start.Offset {
			return di.Position.Start.Offset < dj.Position.Start.Offset
		}
		if di.Position.End.Offset != dj.Position.End.Offset {
			return di.Position.End.Offset < dj.Position.End.Offset
		}
		if di.Level() != dj.Level() {
			return di.Level() < dj.Level()
		}
		if di.RuleID != dj.RuleID {
			return di.RuleID < dj.RuleID
		}
		return di.Message < dj.Message
	})
	return formatLines(sorted)
}

// FormatShort renders diagnostics in their original emission order, same
// line shape as FormatGolden. Used for the CLI short format, where source
// order is the point.
func FormatShort(diags []*Diagnostic) string {
	return formatLines(diags)
}

func formatLines(diags []*Diagnostic) string {
	var b strings.Builder
	for i, d := range diags {
		fmt.Fprintf(&b, "%s %s %s %s", d.Level(), d.RuleID, d.Name, sanitizeMessage(d.Message))
		if i < len(diags)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
