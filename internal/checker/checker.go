// Package checker orchestrates one run: load the document, find its event
// stream, assemble diagnostics, consult the disk cache. Directory walks
// fan the same per-file pipeline out over a bounded worker pool.
package checker

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"

	"htmlint/internal/config"
	"htmlint/internal/diag"
	"htmlint/internal/emitter"
	"htmlint/internal/event"
	"htmlint/internal/observ"
	"htmlint/internal/source"
)

// DefaultMaxDiagnostics bounds one document's bag unless overridden.
const DefaultMaxDiagnostics = 256

// Options управляет проверкой одного документа (и каждым файлом при
// обходе каталога).
type Options struct {
	// Config is the resolved severity policy. Nil means defaults.
	Config *config.Config

	// EventsPath points at an explicit event stream. Empty means sidecar
	// discovery next to the document.
	EventsPath string

	// NoSidecar disables sidecar discovery; only EventsPath is consulted.
	NoSidecar bool

	// MaxDiagnostics caps the per-file bag. 0 picks the default.
	MaxDiagnostics int

	// Dedup drops diagnostics repeating an earlier one exactly (same
	// rule, range and message).
	Dedup bool

	// Cache, when non-nil, short-circuits repeat checks of unchanged
	// inputs.
	Cache *DiskCache

	// Progress receives stage events. Nil is silent.
	Progress ProgressSink
}

// Result is the outcome for one document.
type Result struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Events int
	Cached bool
	Timing observ.Report
}

func (o Options) emit(evt Event) {
	if o.Progress != nil {
		o.Progress.OnEvent(evt)
	}
}

func (o Options) config() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.Default()
}

func (o Options) bagCap() int {
	limit := o.MaxDiagnostics
	if limit <= 0 {
		return DefaultMaxDiagnostics
	}
	// Bag держит лимит в uint16; не даём CLI-значению завернуться в ноль.
	if _, err := safecast.Conv[uint16](limit); err != nil {
		return int(^uint16(0))
	}
	return limit
}

// FindSidecar looks for an event stream next to the document:
// <file>.events.ndjson first, then <file>.events.mp.
func FindSidecar(docPath string) (string, bool) {
	for _, suffix := range []string{".events.ndjson", ".events.mp"} {
		candidate := docPath + suffix
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// CheckFile runs the whole pipeline for one document. The file is loaded
// into fileSet; a missing event stream is not an error (the parser simply
// recorded nothing, so the document is clean).
func CheckFile(ctx context.Context, fileSet *source.FileSet, path string, opts Options) (*Result, error) {
	timer := observ.NewTimer()
	opts.emit(Event{File: path, Stage: StageLoad, Status: StatusWorking})
	endLoad := timer.Begin("load")

	fileID, err := fileSet.Load(path)
	if err != nil {
		opts.emit(Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	elapsed := endLoad(fmt.Sprintf("%d bytes", len(fileSet.Get(fileID).Content)))
	opts.emit(Event{File: path, Stage: StageLoad, Status: StatusDone, Elapsed: elapsed})

	return annotate(ctx, fileSet, fileID, path, opts, timer)
}

// annotate assumes the document is already in the fileSet and runs the
// event and assembly stages against it. In directory mode documents are
// preloaded before the worker pool starts, so there is no load phase and
// timer is nil.
func annotate(ctx context.Context, fileSet *source.FileSet, fileID source.FileID, path string, opts Options, timer *observ.Timer) (*Result, error) {
	if timer == nil {
		timer = observ.NewTimer()
	}
	cfg := opts.config()
	file := fileSet.Get(fileID)

	opts.emit(Event{File: path, Stage: StageEvents, Status: StatusWorking})
	endEvents := timer.Begin("events")

	eventsPath := opts.EventsPath
	if eventsPath == "" && !opts.NoSidecar {
		eventsPath, _ = FindSidecar(path)
	}

	var rawEvents []byte
	var events []event.Raw
	if eventsPath != "" {
		raw, err := os.ReadFile(eventsPath)
		if err != nil {
			opts.emit(Event{File: path, Stage: StageEvents, Status: StatusError, Err: err})
			return nil, fmt.Errorf("failed to read events for %s: %w", path, err)
		}
		rawEvents = raw
		events, err = event.Decode(raw, event.DetectFormat(eventsPath))
		if err != nil {
			opts.emit(Event{File: path, Stage: StageEvents, Status: StatusError, Err: err})
			return nil, fmt.Errorf("%s: %w", eventsPath, err)
		}
	}
	elapsed := endEvents(fmt.Sprintf("%d events", len(events)))
	opts.emit(Event{File: path, Stage: StageEvents, Status: StatusDone, Elapsed: elapsed})

	key := cacheKey(file.Hash, rawEvents, cfg, opts.Dedup)
	if opts.Cache != nil {
		var payload diskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok && payload.Schema == cacheSchemaVersion {
			bag := diag.NewBag(opts.bagCap())
			for _, d := range payload.Diagnostics {
				bag.Add(d)
			}
			// Попадание в кеш: стадия annotate закрывается без работы.
			opts.emit(Event{File: path, Stage: StageAnnotate, Status: StatusDone})
			return &Result{
				Path:   path,
				FileID: fileID,
				Bag:    bag,
				Events: payload.Events,
				Cached: true,
				Timing: timer.Report(),
			}, nil
		}
	}

	// Отмена до основной работы; сами события обрабатываются синхронно.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	opts.emit(Event{File: path, Stage: StageAnnotate, Status: StatusWorking})
	endAnnotate := timer.Begin("annotate")

	bag := diag.NewBag(opts.bagCap())
	var sink diag.Sink = diag.BagSink{Bag: bag}
	if opts.Dedup {
		sink = diag.NewDedupSink(sink)
	}
	em := emitter.New(file.Content, emitter.Options{
		Fragment:    cfg.Fragment,
		Severities:  cfg.Severities,
		Sink:        sink,
		SubjectName: path,
	})
	em.HandleAll(events)
	bag.Sort()

	elapsed = endAnnotate(fmt.Sprintf("%d diagnostics", bag.Len()))
	opts.emit(Event{File: path, Stage: StageAnnotate, Status: StatusDone, Elapsed: elapsed})

	if opts.Cache != nil {
		payload := diskPayload{
			Schema:      cacheSchemaVersion,
			Path:        path,
			SourceHash:  Digest(file.Hash),
			Events:      len(events),
			Diagnostics: bag.Items(),
		}
		// Ошибка записи кеша не влияет на результат проверки.
		_ = opts.Cache.Put(key, &payload)
	}

	return &Result{
		Path:   path,
		FileID: fileID,
		Bag:    bag,
		Events: len(events),
		Timing: timer.Report(),
	}, nil
}

// cacheKey binds a cache entry to the exact source bytes, event bytes and
// effective configuration, dedup switch included.
func cacheKey(srcHash [32]byte, rawEvents []byte, cfg *config.Config, dedup bool) Digest {
	mode := sha256.Sum256([]byte(fmt.Sprintf("dedup=%t\n", dedup)))
	return Combine(Digest(srcHash), sha256.Sum256(rawEvents), cfg.Fingerprint(), mode)
}
