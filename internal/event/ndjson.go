package event

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed events.schema.json
var eventSchemaJSON string

// lineSchema компилируется один раз на процесс; Validate безопасен для
// конкурентного использования.
var lineSchema = jsonschema.MustCompileString("events.schema.json", eventSchemaJSON)

// ReadNDJSON decodes a newline-delimited JSON event stream: one object per
// line, blank lines skipped. Every record is checked against the embedded
// schema before the typed decode, so a misbehaving producer fails with a
// precise message instead of leaking bad positions downstream. Errors name
// the 1-based line of the offending record.
func ReadNDJSON(r io.Reader) ([]Raw, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var evs []Raw
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		ev, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("events line %d: %w", line, err)
		}
		evs = append(evs, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("events line %d: %w", line+1, err)
	}
	return evs, nil
}

// decodeRecord runs the full gauntlet for one record: schema validation,
// strict field decoding, structural invariants.
func decodeRecord(raw []byte) (Raw, error) {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Raw{}, err
	}
	if err := lineSchema.Validate(payload); err != nil {
		return Raw{}, err
	}

	var ev Raw
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		return Raw{}, err
	}
	if err := ev.Validate(); err != nil {
		return Raw{}, err
	}
	return ev, nil
}
