package emitter

import (
	"testing"

	"htmlint/internal/catalog"
	"htmlint/internal/diag"
	"htmlint/internal/event"
)

func collect(t *testing.T, src string, opts Options, evs ...event.Raw) []*diag.Diagnostic {
	t.Helper()
	var got []*diag.Diagnostic
	opts.Sink = diag.SinkFunc(func(d *diag.Diagnostic) { got = append(got, d) })
	e := New([]byte(src), opts)
	e.HandleAll(evs)
	return got
}

func oneEvent(code string, line, col, off int) event.Raw {
	return event.Raw{
		Code:      code,
		StartLine: line, StartCol: col, StartOffset: off,
		EndLine: line, EndCol: col, EndOffset: off,
	}
}

func TestMissingDoctypeScenario(t *testing.T) {
	// Документ "a" без doctype: ровно одна диагностика, url подавлен.
	got := collect(t, "a", Options{}, oneEvent("missing-doctype", 1, 1, 0))

	if len(got) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(got))
	}
	d := got[0]

	if d.RuleID != "missing-doctype" {
		t.Errorf("RuleID = %q, want %q", d.RuleID, "missing-doctype")
	}
	if d.Message != "Missing doctype before other content" {
		t.Errorf("Message = %q", d.Message)
	}
	if d.Reason != d.Message {
		t.Errorf("Reason = %q, must duplicate Message %q", d.Reason, d.Message)
	}
	if d.Note != "Expected a `<!doctype html>` before anything else" {
		t.Errorf("Note = %q", d.Note)
	}
	if d.Name != "1:1-1:1" {
		t.Errorf("Name = %q, want %q", d.Name, "1:1-1:1")
	}
	if d.Line != 1 || d.Column != 1 {
		t.Errorf("Line:Column = %d:%d, want 1:1", d.Line, d.Column)
	}
	wantPos := diag.Position{
		Start: diag.Point{Line: 1, Column: 1, Offset: 0},
		End:   diag.Point{Line: 1, Column: 1, Offset: 0},
	}
	if d.Position != wantPos {
		t.Errorf("Position = %+v, want %+v", d.Position, wantPos)
	}
	if d.Fatal == nil || *d.Fatal {
		t.Errorf("Fatal = %v, want false", d.Fatal)
	}
	if d.Source != "htmlint" {
		t.Errorf("Source = %q, want %q", d.Source, "htmlint")
	}
	if d.URL != nil {
		t.Errorf("URL = %v, want null for a rule without a spec anchor", *d.URL)
	}
	if d.File != "" {
		t.Errorf("File = %q, want empty without a subject name", d.File)
	}
	if d.Severity != diag.SevWarning {
		t.Errorf("Severity = %v, want warning", d.Severity)
	}
}

func TestUnknownNamedCharacterReferenceURL(t *testing.T) {
	got := collect(t, "&x;", Options{}, oneEvent("unknown-named-character-reference", 1, 3, 2))

	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	d := got[0]
	if d.URL == nil {
		t.Fatal("URL = nil, want the spec anchor")
	}
	want := catalog.SpecURLBase + "unknown-named-character-reference"
	if *d.URL != want {
		t.Errorf("URL = %q, want %q", *d.URL, want)
	}
	if d.Name != "1:3-1:3" {
		t.Errorf("Name = %q, want %q", d.Name, "1:3-1:3")
	}
}

func TestEndTagWithTrailingSolidusNote(t *testing.T) {
	// "</x/>": событие приходит после слэша, %c-1 достаёт его из текста.
	got := collect(t, "</x/>", Options{}, oneEvent("end-tag-with-trailing-solidus", 1, 5, 4))

	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	if want := "Unexpected `/`. Expected `>` instead"; got[0].Note != want {
		t.Errorf("Note = %q, want %q", got[0].Note, want)
	}
}

func TestBacktickSourceCharEscaped(t *testing.T) {
	got := collect(t, "<`>", Options{}, oneEvent("invalid-first-character-of-tag-name", 1, 2, 1))

	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	if want := "Unexpected `` ` ``. Expected an ASCII letter instead"; got[0].Note != want {
		t.Errorf("Note = %q, want %q", got[0].Note, want)
	}
}

func TestNullCharacterHex(t *testing.T) {
	got := collect(t, "\x00", Options{}, oneEvent("unexpected-null-character", 1, 1, 0))

	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	if want := "Unexpected code point `0x0`. Do not use NULL characters in HTML"; got[0].Note != want {
		t.Errorf("Note = %q, want %q", got[0].Note, want)
	}
}

func TestSuppressionSkipsSink(t *testing.T) {
	opts := Options{Severities: SeverityConfig{"missingDoctype": diag.SevOff}}
	got := collect(t, "a", opts, oneEvent("missing-doctype", 1, 1, 0))

	if len(got) != 0 {
		t.Fatalf("suppressed rule invoked the sink %d times", len(got))
	}
}

func TestEscalationToFatal(t *testing.T) {
	opts := Options{Severities: SeverityConfig{"missingDoctype": diag.SevFatal}}
	got := collect(t, "a", opts, oneEvent("missing-doctype", 1, 1, 0))

	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	if got[0].Fatal == nil || !*got[0].Fatal {
		t.Errorf("Fatal = %v, want true at severity 2", got[0].Fatal)
	}
}

func TestSeverityAboveFatalEmitsNonFatal(t *testing.T) {
	opts := Options{Severities: SeverityConfig{"missingDoctype": diag.Severity(3)}}
	got := collect(t, "a", opts, oneEvent("missing-doctype", 1, 1, 0))

	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	if got[0].Fatal == nil || *got[0].Fatal {
		t.Errorf("Fatal = %v, want false: only exactly 2 is fatal", got[0].Fatal)
	}
	if got[0].Severity != diag.Severity(3) {
		t.Errorf("Severity = %v, want pass-through 3", got[0].Severity)
	}
}

func TestCatalogMissDegradesToEmptyTemplates(t *testing.T) {
	got := collect(t, "x", Options{}, oneEvent("totally-unknown-rule", 1, 1, 0))

	if len(got) != 1 {
		t.Fatalf("catalog miss must still emit, got %d diagnostics", len(got))
	}
	d := got[0]
	if d.Message != "" || d.Reason != "" || d.Note != "" {
		t.Errorf("catalog miss must render empty templates, got message %q note %q", d.Message, d.Note)
	}
	if d.RuleID != "totally-unknown-rule" {
		t.Errorf("RuleID = %q, want the original code", d.RuleID)
	}
	if d.URL == nil {
		t.Error("URL = nil; only a known entry can suppress the link")
	}
}

func TestNilSinkStillResolves(t *testing.T) {
	e := New([]byte("a"), Options{})
	// не должно паниковать и ничего не должно быть видно снаружи
	e.Handle(oneEvent("missing-doctype", 1, 1, 0))
}

func TestSinkPanicPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic from the sink must reach the caller")
		}
	}()
	e := New([]byte("a"), Options{
		Sink: diag.SinkFunc(func(*diag.Diagnostic) { panic("sink failed") }),
	})
	e.Handle(oneEvent("missing-doctype", 1, 1, 0))
}

func TestSourceOrderPreserved(t *testing.T) {
	evs := []event.Raw{
		oneEvent("missing-doctype", 1, 1, 0),
		oneEvent("unexpected-null-character", 1, 2, 1),
		oneEvent("eof-in-tag", 1, 3, 2),
	}
	got := collect(t, "a\x00<", Options{}, evs...)

	if len(got) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(got))
	}
	for i, want := range []string{"missing-doctype", "unexpected-null-character", "eof-in-tag"} {
		if got[i].RuleID != want {
			t.Errorf("diagnostic %d is %q, want %q", i, got[i].RuleID, want)
		}
	}
}

func TestSubjectNamePrefixesNameAndFillsFile(t *testing.T) {
	opts := Options{SubjectName: "index.html"}
	got := collect(t, "a", opts, oneEvent("missing-doctype", 1, 1, 0))

	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	if got[0].Name != "index.html:1:1-1:1" {
		t.Errorf("Name = %q, want %q", got[0].Name, "index.html:1:1-1:1")
	}
	if got[0].File != "index.html" {
		t.Errorf("File = %q, want %q", got[0].File, "index.html")
	}
}

func TestRangeSpansMultiplePositions(t *testing.T) {
	ev := event.Raw{
		Code:      "duplicate-attribute",
		StartLine: 2, StartCol: 4, StartOffset: 10,
		EndLine: 2, EndCol: 9, EndOffset: 15,
	}
	got := collect(t, "<a m=1>\n<b m=1 m=2>", Options{}, ev)

	if len(got) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(got))
	}
	if got[0].Name != "2:4-2:9" {
		t.Errorf("Name = %q, want %q", got[0].Name, "2:4-2:9")
	}
	if got[0].Position.End.Offset != 15 {
		t.Errorf("End.Offset = %d, want 15 untransformed", got[0].Position.End.Offset)
	}
}

func TestFragmentFlagDoesNotChangeOutput(t *testing.T) {
	ev := oneEvent("missing-doctype", 1, 1, 0)
	doc := collect(t, "a", Options{Fragment: false}, ev)
	frag := collect(t, "a", Options{Fragment: true}, ev)

	if len(doc) != 1 || len(frag) != 1 {
		t.Fatalf("expected one diagnostic each, got %d and %d", len(doc), len(frag))
	}
	if doc[0].Message != frag[0].Message || doc[0].Name != frag[0].Name {
		t.Error("fragment flag must not change assembly")
	}
}
