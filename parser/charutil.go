package parser

import "fmt"

// isControlCharacter reports whether c is a JSON control character: any
// code point at or below U+001F, or U+007F (DEL).
func isControlCharacter(c rune) bool {
	return c <= 0x1F || c == 0x7F
}

// isRFCWhitespace reports whether c is one of the four whitespace code
// points RFC 8259 allows between tokens.
func isRFCWhitespace(c rune) bool {
	switch c {
	case 0x20, 0x09, 0x0A, 0x0D:
		return true
	}
	return false
}

// controlCharNames maps the control bytes that have a conventional
// mnemonic to that name, for diagnostics only.
var controlCharNames = map[rune]string{
	0x00: "<NUL>", 0x01: "<SOH>", 0x02: "<STX>", 0x03: "<ETX>",
	0x04: "<EOT>", 0x05: "<ENQ>", 0x06: "<ACK>", 0x07: "<BEL>",
	0x08: "<BS>", 0x09: "<TAB>", 0x0A: "<LF>", 0x0B: "<VT>",
	0x0C: "<FF>", 0x0D: "<CR>", 0x0E: "<SO>", 0x0F: "<SI>",
	0x7F: "<DEL>",
}

// mapToText returns a symbolic name for a non-printable code point,
// falling back to a hex escape for anything not in the mnemonic table.
func mapToText(c rune) string {
	if name, ok := controlCharNames[c]; ok {
		return name
	}
	return fmt.Sprintf("<0x%02X>", c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
