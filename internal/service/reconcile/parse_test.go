package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

func TestIsSignificant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"", false},
		{"{", false},
		{"}", false},
		{" {", true},
		{`"k": "v",`, true},
		{"garbage", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSignificant(tt.line), "line %q", tt.line)
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want domain.ParsedLine
	}{
		{"with comma", `  "Greeting": "Hello {name}",`, domain.ParsedLine{Key: "Greeting", Value: "Hello {name}"}},
		{"without comma", `"Farewell": "Goodbye"`, domain.ParsedLine{Key: "Farewell", Value: "Goodbye"}},
		{"last pair wins", `"a": "1", "b": "2"`, domain.ParsedLine{Key: "b", Value: "2"}},
		{"raw marker kept", `"k": "|||raw||| text"`, domain.ParsedLine{Key: "k", Value: "|||raw||| text"}},
		{"unicode value", `"k": "こんにちは"`, domain.ParsedLine{Key: "k", Value: "こんにちは"}},
		{"empty value", `"k": ""`, domain.ParsedLine{}},
		{"no space after colon", `"k":"v"`, domain.ParsedLine{}},
		{"not a pair", "just text", domain.ParsedLine{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLine(tt.line))
		})
	}
}

func TestDecodeUnicodeEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", `plain "text"`, `plain "text"`},
		{"basic", `\u0041\u0042\u0043`, "ABC"},
		{"lowercase hex", `\u00e9t\u00e9`, "\u00e9t\u00e9"},
		{"cyrillic", `\u0417\u0434`, "\u0417\u0434"},
		{"html escapes", `\u003cb\u003e \u0026`, "<b> &"},
		{"escaped backslash", `\\u0041`, `\\u0041`},
		{"quote stays escaped", `\u0022`, `\u0022`},
		{"backslash stays escaped", `\u005c`, `\u005c`},
		{"control stays escaped", `a\u000ab`, `a\u000ab`},
		{"other escapes untouched", `a\nb\"c`, `a\nb\"c`},
		{"surrogate pair", `\ud83d\ude00`, "\U0001F600"},
		{"lone high surrogate", `\ud83d!`, `\ud83d!`},
		{"lone low surrogate", `\ude00`, `\ude00`},
		{"truncated", `ab\u12`, `ab\u12`},
		{"invalid hex", `\u12zz`, `\u12zz`},
		{"trailing backslash", `ab\`, `ab\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DecodeUnicodeEscapes(tt.in))
		})
	}
}
