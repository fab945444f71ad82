package diag

import (
	"fmt"
)

// Point is one end of a source range: 1-based line and column plus the
// 0-based byte offset into the decoded stream.
type Point struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// Position is the full range a diagnostic covers.
type Position struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Diagnostic is the assembled report for one parse error. The JSON field
// set is part of the output contract: consumers rely on every field being
// present (fatal and url render as null rather than disappearing), with
// file the only optional one.
type Diagnostic struct {
	// RuleID is the original wire-format code, e.g. "missing-doctype".
	RuleID string `json:"ruleId"`
	// Message is the rendered reason template.
	Message string `json:"message"`
	// Reason duplicates Message; older consumers read this name.
	Reason string `json:"reason"`
	// Note is the rendered description template.
	Note string `json:"note"`
	// Name is "<file>:<range>" when the subject is known, else the range.
	Name     string   `json:"name"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Position Position `json:"position"`
	// Fatal is true at severity 2 and false at severity 1. The null state
	// exists in the wire shape but no default mapping produces it.
	Fatal *bool `json:"fatal"`
	// Source tags the origin of the message.
	Source string `json:"source"`
	// URL links the rule's documentation, or null when the rule has none.
	URL *string `json:"url"`
	// File is the subject name, when one was supplied.
	File string `json:"file,omitempty"`

	// Severity is the resolved level the diagnostic was emitted at.
	// Internal; the wire shape carries it only via Fatal.
	Severity Severity `json:"-"`
}

// IsFatal reports whether the fatal flag is set (null counts as false).
func (d *Diagnostic) IsFatal() bool {
	return d.Fatal != nil && *d.Fatal
}

// Level is the human label used by line-oriented output.
func (d *Diagnostic) Level() string {
	if d.IsFatal() {
		return "error"
	}
	return "warning"
}

// Range renders the positional part of Name: "sl:sc-el:ec".
func (p Position) Range() string {
	return fmt.Sprintf("%d:%d-%d:%d", p.Start.Line, p.Start.Column, p.End.Line, p.End.Column)
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s %s %s %s", d.Level(), d.RuleID, d.Name, d.Message)
}
