package model

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodeAndEscape transcodes raw text bytes to UTF-8 and HTML-escapes the
// result so it is safe to drop into an SVG <text> element. UTF-16LE source
// bytes and single-byte codepage bytes are both supported transcodings.
func decodeAndEscape(raw []byte, enc TextEncoding) (string, error) {
	var s string
	switch enc {
	case EncodingUTF16LE:
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		s = string(decoded)
	case EncodingCodepageSingleByte:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		s = string(decoded)
	default: // EncodingUTF8
		s = string(raw)
	}
	return htmlEscape(s), nil
}

// htmlEscape escapes the five characters SVG text content and attribute
// values require escaping.
func htmlEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
