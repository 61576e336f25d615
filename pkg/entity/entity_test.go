package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNamed(t *testing.T) {
	tests := []struct {
		name string
		want rune
	}{
		{"amp", '&'},
		{"lt", '<'},
		{"gt", '>'},
		{"quot", '"'},
		{"apos", '\''},
		{"nbsp", 0x00A0},
		{"copy", 0x00A9},
		{"eacute", 0x00E9},
		{"Delta", 0x0394},
		{"delta", 0x03B4},
		{"hellip", 0x2026},
		{"mdash", 0x2014},
		{"euro", 0x20AC},
		{"rarr", 0x2192},
		{"sub", 0x2282},
	}

	for _, tt := range tests {
		got, ok := Decode([]byte(tt.name))
		require.True(t, ok, "entity %q", tt.name)
		assert.Equal(t, tt.want, got, "entity %q", tt.name)
	}
}

func TestDecodeNumeric(t *testing.T) {
	tests := []struct {
		name string
		want rune
	}{
		{"#169", 0x00A9},
		{"#60", '<'},
		{"#xA9", 0x00A9},
		{"#X41", 'A'},
		{"#x2764", 0x2764},
		{"#1114111", 0x10FFFF},
	}

	for _, tt := range tests {
		got, ok := Decode([]byte(tt.name))
		require.True(t, ok, "reference %q", tt.name)
		assert.Equal(t, tt.want, got, "reference %q", tt.name)
	}
}

func TestDecodeUnknown(t *testing.T) {
	refs := []string{
		"",
		"bogus",
		"ampx",   // extends past the success cell of "amp"
		"am",     // stops before it
		"AMP",    // names are case-sensitive
		"#",      // numeric with no digits
		"#x",     // hex with no digits
		"#12a",   // stray letter in a decimal reference
		"#1114112", // one past the last codepoint
		"a b",    // byte outside the input alphabet
	}

	for _, name := range refs {
		_, ok := Decode([]byte(name))
		assert.False(t, ok, "reference %q must not resolve", name)
	}
}
