package diag

import (
	"testing"
)

func TestSinkFunc(t *testing.T) {
	var got []*Diagnostic
	sink := SinkFunc(func(d *Diagnostic) { got = append(got, d) })

	d := mkDiag("missing-doctype", 0, 0, SevWarning, "m")
	sink.Emit(d)

	if len(got) != 1 || got[0] != d {
		t.Fatalf("SinkFunc did not forward the diagnostic: %v", got)
	}
}

func TestBagSink(t *testing.T) {
	bag := NewBag(4)
	sink := BagSink{Bag: bag}

	sink.Emit(mkDiag("missing-doctype", 0, 0, SevWarning, "m"))
	if bag.Len() != 1 {
		t.Errorf("BagSink stored %d diagnostics, want 1", bag.Len())
	}

	// nil bag must be a no-op
	BagSink{}.Emit(mkDiag("eof-in-tag", 0, 0, SevWarning, "m"))
}

func TestMultiSinkFanOut(t *testing.T) {
	a := NewBag(4)
	b := NewBag(4)
	sink := MultiSink{BagSink{Bag: a}, nil, BagSink{Bag: b}}

	sink.Emit(mkDiag("missing-doctype", 0, 0, SevWarning, "m"))

	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("MultiSink delivered (%d, %d), want (1, 1)", a.Len(), b.Len())
	}
}

func TestDedupSink(t *testing.T) {
	bag := NewBag(8)
	sink := NewDedupSink(BagSink{Bag: bag})

	sink.Emit(mkDiag("missing-doctype", 0, 0, SevWarning, "same"))
	sink.Emit(mkDiag("missing-doctype", 0, 0, SevWarning, "same"))
	sink.Emit(mkDiag("missing-doctype", 0, 0, SevWarning, "other"))
	sink.Emit(mkDiag("missing-doctype", 2, 2, SevWarning, "same"))

	if bag.Len() != 3 {
		t.Errorf("DedupSink forwarded %d diagnostics, want 3", bag.Len())
	}
}

func TestSeverityPredicates(t *testing.T) {
	tests := []struct {
		name      string
		sev       Severity
		wantEmits bool
		wantFatal bool
		wantStr   string
	}{
		{name: "off", sev: SevOff, wantEmits: false, wantFatal: false, wantStr: "off"},
		{name: "warning", sev: SevWarning, wantEmits: true, wantFatal: false, wantStr: "warning"},
		{name: "fatal", sev: SevFatal, wantEmits: true, wantFatal: true, wantStr: "error"},
		{name: "pass-through above fatal", sev: 3, wantEmits: true, wantFatal: false, wantStr: "severity(3)"},
		{name: "negative passes through", sev: -1, wantEmits: true, wantFatal: false, wantStr: "severity(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sev.Emits(); got != tt.wantEmits {
				t.Errorf("Emits() = %v, want %v", got, tt.wantEmits)
			}
			if got := tt.sev.IsFatal(); got != tt.wantFatal {
				t.Errorf("IsFatal() = %v, want %v", got, tt.wantFatal)
			}
			if got := tt.sev.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}
