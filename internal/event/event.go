// Package event models the raw parse-error records an external HTML parser
// reports, and decodes the streams they arrive in (NDJSON or msgpack).
// Events are data only; giving them meaning is the emitter's job.
package event

import (
	"fmt"
)

// Raw is one parse-error event exactly as the parser reported it: a wire
// format rule code plus the span it covers. Lines and columns are 1-based,
// offsets 0-based into the decoded byte stream.
type Raw struct {
	Code        string `json:"code" msgpack:"code"`
	StartLine   int    `json:"startLine" msgpack:"startLine"`
	StartCol    int    `json:"startCol" msgpack:"startCol"`
	StartOffset int    `json:"startOffset" msgpack:"startOffset"`
	EndLine     int    `json:"endLine" msgpack:"endLine"`
	EndCol      int    `json:"endCol" msgpack:"endCol"`
	EndOffset   int    `json:"endOffset" msgpack:"endOffset"`
}

// Validate checks the structural invariants a well-behaved parser upholds.
// Stream readers call it after decoding so a broken producer fails loudly
// instead of yielding nonsense positions downstream.
func (r Raw) Validate() error {
	switch {
	case r.Code == "":
		return fmt.Errorf("event has empty code")
	case r.StartLine < 1 || r.EndLine < 1:
		return fmt.Errorf("event %q: lines must be 1-based, got %d and %d", r.Code, r.StartLine, r.EndLine)
	case r.StartCol < 1 || r.EndCol < 1:
		return fmt.Errorf("event %q: columns must be 1-based, got %d and %d", r.Code, r.StartCol, r.EndCol)
	case r.StartOffset < 0 || r.EndOffset < 0:
		return fmt.Errorf("event %q: offsets must be non-negative, got %d and %d", r.Code, r.StartOffset, r.EndOffset)
	case r.EndOffset < r.StartOffset:
		return fmt.Errorf("event %q: end offset %d before start offset %d", r.Code, r.EndOffset, r.StartOffset)
	case r.EndLine < r.StartLine:
		return fmt.Errorf("event %q: end line %d before start line %d", r.Code, r.EndLine, r.StartLine)
	case r.EndLine == r.StartLine && r.EndCol < r.StartCol:
		return fmt.Errorf("event %q: end column %d before start column %d on line %d", r.Code, r.EndCol, r.StartCol, r.StartLine)
	}
	return nil
}

func (r Raw) String() string {
	return fmt.Sprintf("%s@%d:%d-%d:%d", r.Code, r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}
