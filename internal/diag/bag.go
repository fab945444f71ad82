package diag

import (
	"fmt"
	"sort"
)

// Bag is the caller-held log of diagnostics from one annotation run.
type Bag struct {
	items []*Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]*Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d *Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasFatal возвращает true, если есть хотя бы одна диагностика с fatal:true.
func (b *Bag) HasFatal() bool {
	for _, d := range b.items {
		if d.IsFatal() {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна нефатальная диагностика.
func (b *Bag) HasWarnings() bool {
	for _, d := range b.items {
		if !d.IsFatal() {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if uint16(newTotal) > b.max {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort сортирует диагностики по: file, start, end, severity (desc), ruleId (asc)
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		// сначала по файлу
		if di.File != dj.File {
			return di.File < dj.File
		}
		// затем по старту
		if di.Position.Start.Offset != dj.Position.Start.Offset {
			return di.Position.Start.Offset < dj.Position.Start.Offset
		}
		// затем по концу
		if di.Position.End.Offset != dj.Position.End.Offset {
			return di.Position.End.Offset < dj.Position.End.Offset
		}
		// затем по severity (по убыванию: fatal > warning)
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		// затем по правилу (по возрастанию)
		return di.RuleID < dj.RuleID
	})
}

// простая дедупликация (по ruleId+диапазону+сообщению)
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]*Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%d-%d:%s", d.RuleID, d.Position.Start.Offset, d.Position.End.Offset, d.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}
