package source

import (
	"bytes"
	"testing"
)

func TestDecodeStream(t *testing.T) {
	tests := []struct {
		name      string
		raw       []byte
		want      []byte
		wantFlags FileFlags
	}{
		{
			name:      "plain ascii passes through",
			raw:       []byte("<p>hi</p>"),
			want:      []byte("<p>hi</p>"),
			wantFlags: 0,
		},
		{
			name:      "utf-8 bom stripped",
			raw:       []byte("\xEF\xBB\xBF<p>"),
			want:      []byte("<p>"),
			wantFlags: FileHadBOM,
		},
		{
			name:      "utf-16le transcoded",
			raw:       []byte{0xFF, 0xFE, '<', 0x00, 'p', 0x00, '>', 0x00},
			want:      []byte("<p>"),
			wantFlags: FileHadBOM | FileRecodedUTF16,
		},
		{
			name:      "utf-16be transcoded",
			raw:       []byte{0xFE, 0xFF, 0x00, '<', 0x00, 'p', 0x00, '>'},
			want:      []byte("<p>"),
			wantFlags: FileHadBOM | FileRecodedUTF16,
		},
		{
			name:      "empty input",
			raw:       []byte{},
			want:      []byte{},
			wantFlags: 0,
		},
		{
			name: "invalid utf-8 preserved byte-for-byte",
			// WTF-8 lone surrogate U+D800; offsets must keep addressing it.
			raw:       []byte{'a', 0xED, 0xA0, 0x80, 'b'},
			want:      []byte{'a', 0xED, 0xA0, 0x80, 'b'},
			wantFlags: 0,
		},
		{
			name:      "nul bytes preserved",
			raw:       []byte{'x', 0x00, 'y'},
			want:      []byte{'x', 0x00, 'y'},
			wantFlags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags, err := decodeStream(tt.raw)
			if err != nil {
				t.Fatalf("decodeStream returned error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decodeStream content = %q, want %q", got, tt.want)
			}
			if flags != tt.wantFlags {
				t.Errorf("decodeStream flags = %b, want %b", flags, tt.wantFlags)
			}
		})
	}
}
