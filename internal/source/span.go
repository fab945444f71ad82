package source

import (
	"fmt"
)

// Span is a half-open byte range within one document.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// NewSpan builds a span from int offsets, clamping negatives to zero and
// collapsing a reversed range onto its start.
func NewSpan(file FileID, start, end int) Span {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return Span{File: file, Start: uint32(start), End: uint32(end)}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover widens the span to include other. Spans from different documents
// are incomparable; the receiver wins.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
