package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	// FileHadCR marks files containing at least one '\r'.
	FileHadCR
)

// File captures metadata and content for a single source file.
// Content is kept verbatim: the lexer owns line terminator handling.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineStarts holds the byte offset of the first byte of every line after the first.
	LineStarts []uint32
	Hash       [32]byte
	Flags      FileFlags
}

// Position is a zero-based location measured in runes.
// Line increments and Column resets exactly when a line terminator is crossed.
type Position struct {
	Offset uint32
	Line   uint32
	Column uint32
}

// Before reports whether p is strictly before q in the stream.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}
