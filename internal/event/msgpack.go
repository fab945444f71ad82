package event

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// ReadMsgpack decodes a binary event stream: msgpack-encoded Raw records
// back to back until EOF. Errors name the 1-based ordinal of the record
// that failed.
func ReadMsgpack(r io.Reader) ([]Raw, error) {
	dec := msgpack.NewDecoder(r)
	var evs []Raw
	for n := 1; ; n++ {
		var ev Raw
		if err := dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				return evs, nil
			}
			return nil, fmt.Errorf("events record %d: %w", n, err)
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("events record %d: %w", n, err)
		}
		evs = append(evs, ev)
	}
}
