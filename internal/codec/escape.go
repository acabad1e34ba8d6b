package codec

import "strings"

const (
	fieldSep = '|'
	listSep  = ','
)

var (
	fieldEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`, "\n", `\n`, "\r", `\r`)
	listEscaper  = strings.NewReplacer(`\`, `\\`, `|`, `\|`, "\n", `\n`, "\r", `\r`, `,`, `\,`)
)

// Escape protects a field value: backslash, '|', LF and CR are written as
// two-character escape sequences.
func Escape(s string) string {
	return fieldEscaper.Replace(s)
}

// escapeItem is Escape plus ',' for values stored inside a list field.
func escapeItem(s string) string {
	return listEscaper.Replace(s)
}

// Unescape reverses Escape (and escapeItem) in a single left-to-right pass.
// A dangling trailing backslash is kept as is.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Split cuts s at every sep that is not part of an escape sequence. The parts
// are returned still escaped.
func Split(s string, sep byte) []string {
	parts := make([]string, 0, 12)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// EncodeList joins items with ',' after escaping each one. A list holding a
// single empty item encodes like an empty list and decodes as nil; empty
// items anywhere else survive the round trip.
func EncodeList(items []string) string {
	escaped := make([]string, len(items))
	for i, it := range items {
		escaped[i] = escapeItem(it)
	}
	return strings.Join(escaped, string(listSep))
}

// DecodeList decodes a list field. An empty field is an empty list.
func DecodeList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := Split(raw, listSep)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = Unescape(p)
	}
	return out
}
