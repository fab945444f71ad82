// Package catalog holds the static rule table for HTML parse errors.
//
// # Purpose
//
//   - Map every rule code the parser can report to its human-facing reason
//     and description templates (see codes.go).
//   - Decide whether a rule links to the HTML standard's parse-error anchors
//     or deliberately carries no link (tree-construction rules the standard
//     does not enumerate).
//   - Convert between the wire form of a code (hyphen-case, as events carry
//     it) and the table's key form (camel-case).
//
// # Scope
//
// The catalog is pure data plus lookup. Template expansion lives in
// internal/emitter, severity policy in internal/emitter and internal/config,
// rendering in internal/diagfmt.
//
// The table is immutable after init and safe to share across concurrent
// annotation runs. A lookup miss is not an error here: emitters degrade to
// empty templates so a table gap never turns into a runtime failure.
package catalog
