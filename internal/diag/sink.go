package diag

// Sink — минимальный контракт доставки диагностик потребителю.
// Реализации: BagSink (кладёт в Bag), SinkFunc, MultiSink (fan-out),
// DedupSink (фильтр повторов).
//
// The emitter calls Emit synchronously, once per non-suppressed event, in
// source order. Panics from a sink are deliberately not recovered; they
// belong to the caller that supplied it.
type Sink interface {
	Emit(d *Diagnostic)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(*Diagnostic)

func (f SinkFunc) Emit(d *Diagnostic) { f(d) }

// BagSink — адаптер, который пишет в *Bag.
type BagSink struct{ Bag *Bag }

func (s BagSink) Emit(d *Diagnostic) {
	if s.Bag == nil {
		return
	}
	s.Bag.Add(d)
}

// MultiSink fans a diagnostic out to every sink in order.
type MultiSink []Sink

func (m MultiSink) Emit(d *Diagnostic) {
	for _, s := range m {
		if s != nil {
			s.Emit(d)
		}
	}
}
