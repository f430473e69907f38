package main

import (
	"strings"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// positionAt converts the byte offset off in text to an LSP position,
// whose character counts UTF-16 code units.
func positionAt(text string, off int) protocol.Position {
	off = max(0, min(off, len(text)))
	var line, char uint32
	for _, r := range text[:off] {
		if r == '\n' {
			line++
			char = 0
			continue
		}
		char += utf16Len(r)
	}
	return protocol.Position{Line: line, Character: char}
}

// offsetAt converts an LSP position to a byte offset in text. Positions
// past the end of a line are clamped to it.
func offsetAt(text string, pos protocol.Position) int {
	i := 0
	for line := uint32(0); line < pos.Line; line++ {
		j := indexNewline(text, i)
		if j < 0 {
			return len(text)
		}
		i = j + 1
	}
	for char := uint32(0); char < pos.Character && i < len(text); {
		r, sz := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			break
		}
		char += utf16Len(r)
		i += sz
	}
	return i
}

// lineColOffset converts the 1-based line and byte column of a
// *token.SyntaxErr to a byte offset in text.
func lineColOffset(text string, line, col int) int {
	i := 0
	for l := 1; l < line; l++ {
		j := indexNewline(text, i)
		if j < 0 {
			return len(text)
		}
		i = j + 1
	}
	end := indexNewline(text, i)
	if end < 0 {
		end = len(text)
	}
	return min(i+max(col-1, 0), end)
}

func indexNewline(text string, from int) int {
	j := strings.IndexByte(text[from:], '\n')
	if j < 0 {
		return -1
	}
	return from + j
}

func utf16Len(r rune) uint32 {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
