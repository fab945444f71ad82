// Package diag defines the diagnostic model shared by the emitter, the
// checker and every output format.
//
// # Purpose
//
//   - Provide the serialisable Diagnostic record in the exact wire shape
//     consumers parse (vfile-message style: ruleId/message/reason/note/
//     name/line/column/position/fatal/source/url, optional file).
//   - Offer light-weight delivery utilities (Sink, Bag) that let the
//     emitter hand off diagnostics without coupling to storage or
//     formatting layers.
//
// # Scope
//
// Package diag performs no template rendering, severity resolution, IO or
// CLI integration. Rendering responsibilities live in internal/diagfmt,
// rule templates in internal/catalog, assembly in internal/emitter.
//
// # Data model
//
// Diagnostic is the central record. Field presence is part of the
// contract: fatal and url serialise as null rather than vanishing, and
// file is the only optional field. Fatal is a *bool because the wire
// shape distinguishes null from false, although the default severity
// mapping only ever produces true or false (see internal/emitter).
//
// Severity rides along unserialised. It is the resolved 0/1/2 level
// (off/warning/fatal); values outside that range are legal, emit, and are
// never fatal.
//
// # Delivery
//
// The emitter pushes each assembled record through a Sink exactly once,
// synchronously, in source order. BagSink aggregates into a Bag, which
// supports sorting, deduplication and merge across files; DedupSink
// filters replayed errors before they reach a downstream sink; MultiSink
// fans out. Sink panics are not recovered here: a sink belongs to the
// caller, and so do its failures.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics into pretty/json/short output.
//   - internal/checker: coordinates bag collection per file and transports
//     diagnostic data to CLI commands and the result cache.
//
// Keep the model deterministic: new fields must serialise stably so the
// checker can cache diagnostics and tests can golden them.
package diag
