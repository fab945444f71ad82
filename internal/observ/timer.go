package observ

import "time"

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
}

// Timer собирает длительности фаз одной проверки документа.
// Не потокобезопасен: таймер живёт внутри обработки одного файла.
type Timer struct {
	phases []phase
}

func NewTimer() *Timer { return &Timer{phases: make([]phase, 0, 4)} }

// Begin opens a named phase and returns the closure that ends it. The
// closure stores the note and reports the measured duration, so the same
// measurement feeds both progress events and the final report.
func (t *Timer) Begin(name string) func(note string) time.Duration {
	idx := len(t.phases)
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	return func(note string) time.Duration {
		p := &t.phases[idx]
		p.dur = time.Since(p.start)
		p.note = note
		return p.dur
	}
}

// PhaseReport — запись одной фазы в сериализуемом отчёте.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is the aggregate view handed to renderers.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report собирает фазы и их сумму в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	out := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.dur
		out.Phases[i] = PhaseReport{Name: p.name, DurationMS: millis(p.dur), Note: p.note}
	}
	out.TotalMS = millis(total)
	return out
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
