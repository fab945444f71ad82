// Package emitter turns raw parse-error events into finished diagnostics.
//
// # Purpose
//
//   - Resolve each event's severity from caller configuration
//     (default-then-coerce: absent means warning, numbers pass through,
//     truthiness covers the rest).
//   - Expand the catalog's %c / %x template placeholders against the
//     original decoded source at the event's start offset.
//   - Assemble the diag.Diagnostic record and hand it to the caller's
//     sink, synchronously, in source order.
//
// # Contract
//
// One Handle call per event, zero or one sink invocation per call.
// Severity 0 suppresses before any lookup output is observable. A catalog
// miss renders empty reason and note rather than failing: template
// completeness is a build-time concern, not a runtime one. Nothing here
// buffers, merges or reorders events, and nothing recovers a sink panic.
//
// An Emitter is bound to one document and is not safe for concurrent use;
// run one Emitter per goroutine. The catalog it reads is immutable, so
// any number of Emitters may run in parallel.
package emitter
