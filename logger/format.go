package logger

import (
	"fmt"
	"strings"
)

// Format replaces each occurrence of $<n> in format with args[n]. Indices
// are single decimal digits; an index with no corresponding argument
// substitutes nothing. "$$" produces a literal dollar sign, and a "$"
// followed by anything else (or at the end of the string) is kept as-is.
func Format(format string, args ...string) string {
	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(format) {
			b.WriteByte('$')
			break
		}
		switch n := format[i]; {
		case n == '$':
			b.WriteByte('$')
		case n >= '0' && n <= '9':
			if idx := int(n - '0'); idx < len(args) {
				b.WriteString(args[idx])
			}
		default:
			b.WriteByte('$')
			b.WriteByte(n)
		}
	}
	return b.String()
}

const dumpBytesPerLine = 16

// FormatDump appends a canonical hex+ASCII dump of data to message,
// separated by a newline (omitted when message is empty). Each dump line is
// a 4-digit hex offset, sixteen two-digit hex byte values (an extra space
// after the eighth), and the same bytes as ASCII with '.' standing in for
// anything outside the printable range 32..126.
func FormatDump(message string, data []byte) string {
	var b strings.Builder
	b.Grow(len(message) + len(data)*5)
	b.WriteString(message)
	for addr := 0; addr < len(data); addr += dumpBytesPerLine {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%04X  ", addr)
		for i := 0; i < dumpBytesPerLine; i++ {
			if off := addr + i; off < len(data) {
				fmt.Fprintf(&b, "%02X", data[off])
			} else {
				b.WriteString("  ")
			}
			if i == 7 {
				b.WriteString("  ")
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte(' ')
		for i := 0; i < dumpBytesPerLine && addr+i < len(data); i++ {
			c := data[addr+i]
			if c >= 32 && c < 127 {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
