package source

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Byte order marks recognized by decodeStream. UTF-8 is the default and the
// only encoding accepted without a BOM.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// decodeStream applies the byte-stream decoding preamble: it strips a UTF-8
// BOM or transcodes UTF-16 (either endianness, detected by BOM) to UTF-8.
// Anything else passes through untouched, including invalid UTF-8 sequences;
// positions reported against the stream must keep meaning byte-for-byte, so
// no replacement characters are substituted and no line endings rewritten.
func decodeStream(raw []byte) ([]byte, FileFlags, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return raw[len(bomUTF8):], FileHadBOM, nil

	case bytes.HasPrefix(raw, bomUTF16BE):
		out, err := recodeUTF16(raw, unicode.BigEndian)
		if err != nil {
			return nil, 0, err
		}
		return out, FileHadBOM | FileRecodedUTF16, nil

	case bytes.HasPrefix(raw, bomUTF16LE):
		out, err := recodeUTF16(raw, unicode.LittleEndian)
		if err != nil {
			return nil, 0, err
		}
		return out, FileHadBOM | FileRecodedUTF16, nil

	default:
		return raw, 0, nil
	}
}

func recodeUTF16(raw []byte, endian unicode.Endianness) ([]byte, error) {
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, fmt.Errorf("decode utf-16 stream: %w", err)
	}
	return out, nil
}
