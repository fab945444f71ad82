package diag

type dedupKey struct {
	rule    string
	start   int
	end     int
	message string
}

// DedupSink wraps another Sink and suppresses duplicate diagnostics with
// the same rule, range and message. Parsers sometimes replay an error when
// they re-enter a state; consumers only want to hear about it once.
type DedupSink struct {
	next Sink
	seen map[dedupKey]struct{}
}

// NewDedupSink returns a Sink that forwards only the first occurrence of
// each diagnostic to next.
func NewDedupSink(next Sink) *DedupSink {
	return &DedupSink{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (s *DedupSink) Emit(d *Diagnostic) {
	if s == nil || d == nil {
		return
	}
	key := dedupKey{
		rule:    d.RuleID,
		start:   d.Position.Start.Offset,
		end:     d.Position.End.Offset,
		message: d.Message,
	}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	if s.next != nil {
		s.next.Emit(d)
	}
}
