// Package fuzztests houses Go fuzz harnesses for the lexer. They feed
// arbitrary bytes through a FileSet and the lexer under both fixed and
// token-tracked contexts, guarding against panics, hangs and spans that
// run backwards.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
