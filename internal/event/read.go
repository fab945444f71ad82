package event

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported event stream encoding.
type Format int

const (
	FormatNDJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "ndjson"
}

// DetectFormat picks the stream encoding from a file extension. NDJSON is
// the default for anything it does not recognize.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp", ".msgpack":
		return FormatMsgpack
	default:
		return FormatNDJSON
	}
}

// Decode parses an in-memory stream in the given format.
func Decode(raw []byte, f Format) ([]Raw, error) {
	if f == FormatMsgpack {
		return ReadMsgpack(bytes.NewReader(raw))
	}
	return ReadNDJSON(bytes.NewReader(raw))
}

// ReadFile loads a complete event stream from disk, choosing the decoder
// by extension.
func ReadFile(path string) ([]Raw, error) {
	// #nosec G304 -- path comes from CLI flags or sidecar discovery.
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	evs, err := Decode(raw, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return evs, nil
}
