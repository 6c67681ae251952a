package reconcile

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// keyValuePattern matches one `"key": "value"` pair, optionally followed by a comma.
var keyValuePattern = regexp.MustCompile(`"([^"]+)": "([^"]+)"(,)?`)

// IsSignificant reports whether a source line should be parsed at all.
// Object delimiters and empty lines are skipped.
func IsSignificant(line string) bool {
	switch line {
	case "", "{", "}":
		return false
	}
	return true
}

// ParseLine extracts the key/value pair of a source line. When the line holds
// several pairs the last one wins; when it holds none the result is empty.
func ParseLine(line string) domain.ParsedLine {
	matches := keyValuePattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return domain.ParsedLine{}
	}
	last := matches[len(matches)-1]
	return domain.ParsedLine{Key: last[1], Value: last[2]}
}

// DecodeUnicodeEscapes replaces \uXXXX escapes with the literal character.
// Escaped backslashes are skipped over, surrogate pairs are joined, and
// characters that must stay escaped inside a JSON string (control
// characters, quote, backslash, lone surrogates) are left untouched.
func DecodeUnicodeEscapes(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		if s[i+1] != 'u' {
			b.WriteString(s[i : i+2])
			i += 2
			continue
		}

		r, ok := hex4(s, i+2)
		if !ok {
			b.WriteString(s[i : i+2])
			i += 2
			continue
		}

		width := 6
		if utf16.IsSurrogate(r) {
			joined, w := joinSurrogate(s, i, r)
			if w == 0 {
				b.WriteString(s[i : i+6])
				i += 6
				continue
			}
			r, width = joined, w
		}
		if !literalSafe(r) {
			b.WriteString(s[i : i+width])
			i += width
			continue
		}

		b.WriteRune(r)
		i += width
	}

	return b.String()
}

// joinSurrogate combines a high surrogate at s[i:] with the low surrogate
// escape that follows it. Width 0 means no valid pair was found.
func joinSurrogate(s string, i int, hi rune) (rune, int) {
	if hi >= 0xDC00 || i+12 > len(s) || s[i+6] != '\\' || s[i+7] != 'u' {
		return hi, 0
	}
	lo, ok := hex4(s, i+8)
	if !ok {
		return hi, 0
	}
	r := utf16.DecodeRune(hi, lo)
	if r == utf8.RuneError {
		return hi, 0
	}
	return r, 12
}

func hex4(s string, at int) (rune, bool) {
	if at+4 > len(s) {
		return 0, false
	}
	for _, c := range []byte(s[at : at+4]) {
		if !isHex(c) {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s[at:at+4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func literalSafe(r rune) bool {
	return r >= 0x20 && r != '"' && r != '\\' && utf8.ValidRune(r)
}
