package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// builtinSeeds covers every scanner at least once, including error paths.
var builtinSeeds = []string{
	"",
	"var x = 1;\n",
	"a / b / c",
	"x = /ab+c/.test(y)\n",
	"/[/]/",
	"return\n/re/",
	"0x1F 0o17 017 089 3.14e-2 .5 1. 1e5",
	"0x 0o 1e+ 1e",
	"'it\\'s' \"\\u{1F600}\" \"\\x41\\0\"",
	"\"line\\\r\ncontinued\"",
	"\"unterminated",
	"/* block */ // line\r\n",
	"/* open",
	"a\r\nb\u2028c\u2029d",
	">>>= >>= <<= === !== ++ -- && ||",
	"\\u0061bc caf\\u00e9",
	"@#`",
	"\xff\xfe",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.js и *.mjs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".js" && ext != ".mjs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
