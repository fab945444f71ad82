package emitter

import (
	"htmlint/internal/catalog"
	"htmlint/internal/diag"
	"htmlint/internal/event"
)

// Emitter annotates one document: it holds the decoded source the parser
// consumed and the per-run options, and turns each event the parser
// reported into at most one diagnostic.
type Emitter struct {
	src  []byte
	opts Options
}

// New binds an emitter to a decoded document. The source must be the
// exact byte stream event offsets address.
func New(src []byte, opts Options) *Emitter {
	return &Emitter{src: src, opts: opts}
}

// Handle processes one raw event to completion: normalize the code,
// resolve severity, render templates, assemble, deliver. Severity 0
// returns before anything observable happens.
func (e *Emitter) Handle(ev event.Raw) {
	id := catalog.CamelID(ev.Code)
	sev := e.opts.Severities.Resolve(id)
	if !sev.Emits() {
		return
	}

	// Промах по таблице отдаёт пустую запись: рендерим пустые шаблоны,
	// но диагностику не теряем.
	entry, _ := catalog.Lookup(id)

	reason := renderTemplate(entry.Reason, e.src, ev.StartOffset)
	note := renderTemplate(entry.Description, e.src, ev.StartOffset)

	pos := diag.Position{
		Start: diag.Point{Line: ev.StartLine, Column: ev.StartCol, Offset: ev.StartOffset},
		End:   diag.Point{Line: ev.EndLine, Column: ev.EndCol, Offset: ev.EndOffset},
	}

	name := pos.Range()
	if e.opts.SubjectName != "" {
		name = e.opts.SubjectName + ":" + name
	}

	fatal := sev.IsFatal()
	d := &diag.Diagnostic{
		RuleID:   ev.Code,
		Message:  reason,
		Reason:   reason,
		Note:     note,
		Name:     name,
		Line:     ev.StartLine,
		Column:   ev.StartCol,
		Position: pos,
		Fatal:    &fatal,
		Source:   Source,
		File:     e.opts.SubjectName,
		Severity: sev,
	}
	if !entry.SuppressURL {
		u := catalog.URLFor(ev.Code)
		d.URL = &u
	}

	if e.opts.Sink != nil {
		e.opts.Sink.Emit(d)
	}
}

// HandleAll feeds a slice of events through Handle in order.
func (e *Emitter) HandleAll(evs []event.Raw) {
	for _, ev := range evs {
		e.Handle(ev)
	}
}
