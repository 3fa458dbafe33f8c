package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo           Code = 1000
	LexUnexpectedEOF  Code = 1001
	LexUnexpectedChar Code = 1002
	LexInvalidDigit   Code = 1003
	LexReadError      Code = 1004

	// Ввод-вывод
	IOLoadFileError Code = 4001
	IOWalkDirError  Code = 4002

	// Конфигурация
	CfgInvalidValue Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	LexInfo:           "Lexical information",
	LexUnexpectedEOF:  "Unexpected end of input",
	LexUnexpectedChar: "Unexpected character",
	LexInvalidDigit:   "Invalid digit",
	LexReadError:      "Input read failure",
	IOLoadFileError:   "I/O load file error",
	IOWalkDirError:    "I/O directory walk error",
	CfgInvalidValue:   "Invalid configuration value",
}

// ID returns the stable textual identifier, e.g. "LEX1002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
