package token

// Word enumerates the reserved words.
type Word uint8

const (
	// NoWord is the zero value carried by non-reserved tokens.
	NoWord Word = iota
	WordNull
	WordTrue
	WordFalse
	WordBreak
	WordCase
	WordCatch
	WordClass
	WordConst
	WordContinue
	WordDebugger
	WordDefault
	WordDelete
	WordDo
	WordElse
	WordExport
	WordExtends
	WordFinally
	WordFor
	WordFunction
	WordIf
	WordImport
	WordIn
	WordInstanceof
	WordNew
	WordReturn
	WordSuper
	WordSwitch
	WordThis
	WordThrow
	WordTry
	WordTypeof
	WordVar
	WordVoid
	WordWhile
	WordWith
	WordYield
	WordEnum
	WordAwait

	numWords
)

var wordNames = [numWords]string{
	NoWord:         "",
	WordNull:       "null",
	WordTrue:       "true",
	WordFalse:      "false",
	WordBreak:      "break",
	WordCase:       "case",
	WordCatch:      "catch",
	WordClass:      "class",
	WordConst:      "const",
	WordContinue:   "continue",
	WordDebugger:   "debugger",
	WordDefault:    "default",
	WordDelete:     "delete",
	WordDo:         "do",
	WordElse:       "else",
	WordExport:     "export",
	WordExtends:    "extends",
	WordFinally:    "finally",
	WordFor:        "for",
	WordFunction:   "function",
	WordIf:         "if",
	WordImport:     "import",
	WordIn:         "in",
	WordInstanceof: "instanceof",
	WordNew:        "new",
	WordReturn:     "return",
	WordSuper:      "super",
	WordSwitch:     "switch",
	WordThis:       "this",
	WordThrow:      "throw",
	WordTry:        "try",
	WordTypeof:     "typeof",
	WordVar:        "var",
	WordVoid:       "void",
	WordWhile:      "while",
	WordWith:       "with",
	WordYield:      "yield",
	WordEnum:       "enum",
	WordAwait:      "await",
}

// String returns the spelling of the word.
func (w Word) String() string {
	if w < numWords {
		return wordNames[w]
	}
	return "Word(?)"
}

// LookupWord maps a spelling to its Word regardless of table membership.
func LookupWord(spelling string) (Word, bool) {
	for w := WordNull; w < numWords; w++ {
		if wordNames[w] == spelling {
			return w, true
		}
	}
	return NoWord, false
}

// ReservedTable maps exact spellings to reserved words.
// A table is built once and never mutated afterwards.
type ReservedTable map[string]Word

// Lookup возвращает Word, если ident является зарезервированным словом (точное совпадение, регистр важен).
func (t ReservedTable) Lookup(ident string) (Word, bool) {
	w, ok := t[ident]
	return w, ok
}

// With returns a copy of t extended by the given words.
func (t ReservedTable) With(words ...Word) ReservedTable {
	out := make(ReservedTable, len(t)+len(words))
	for k, v := range t {
		out[k] = v
	}
	for _, w := range words {
		if w != NoWord && w < numWords {
			out[w.String()] = w
		}
	}
	return out
}

// defaultReserved excludes "await", which is contextual in this grammar.
var defaultReserved = func() ReservedTable {
	t := make(ReservedTable, numWords)
	for w := WordNull; w < numWords; w++ {
		if w == WordAwait {
			continue
		}
		t[wordNames[w]] = w
	}
	return t
}()

// DefaultReserved returns the standard reserved-word table.
// Callers must not modify it; use With to derive an extended table.
func DefaultReserved() ReservedTable {
	return defaultReserved
}
