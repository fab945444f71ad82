package source

type (
	// FileID uniquely identifies a source document within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about how a document was obtained.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the document was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	// FileHadBOM indicates a byte order mark was stripped during decoding.
	FileHadBOM
	// FileRecodedUTF16 indicates the document arrived as UTF-16 and was
	// transcoded to UTF-8. Offsets address the transcoded stream.
	FileRecodedUTF16
)

// File captures metadata and decoded content for a single document.
//
// Content holds the decoded byte stream exactly as position offsets address
// it: BOM stripped, UTF-16 transcoded, line endings untouched. Rewriting
// CRLF here would shift every offset the parser reported.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a document.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
