// Package entity decodes HTML character references. Named references are
// resolved through a transition table indexed by [state][input byte]; each
// cell holds either a next state or, with the high bit set, the decoded
// codepoint. Numeric references (&#169; and &#xA9;) are parsed directly.
//
// The scan contract follows the tokenizer: the caller feeds the bytes
// between '&' and the terminator (both exclusive). A reference resolves
// only if its success cell is reached exactly on the last byte; names that
// extend past a success cell of a shorter reference are therefore not
// resolvable, which mirrors the table format's limits.
package entity

import "sort"

const (
	firstChar = '#' // 0x23
	lastChar  = 'z' // 0x7A

	nInputs = int(lastChar-firstChar) + 1

	// successBit marks a cell whose low 31 bits are a decoded codepoint.
	successBit = uint32(1) << 31

	stateNone    = 0 // start state
	stateUnknown = 1 // trap state
)

// maxCodepoint bounds numeric references; larger values are not Unicode.
const maxCodepoint = 0x10FFFF

var transitions [][nInputs]uint32

func init() {
	transitions = make([][nInputs]uint32, 2)
	fillUnknown(&transitions[stateNone])
	fillUnknown(&transitions[stateUnknown])

	// Shorter names first: a name whose path would cross the success cell
	// of an already-inserted prefix cannot be represented and is skipped.
	ordered := make([]string, 0, len(named))
	for name := range named {
		ordered = append(ordered, name)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) < len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})
	for _, name := range ordered {
		insert(name, named[name])
	}
}

func fillUnknown(row *[nInputs]uint32) {
	for c := range row {
		row[c] = stateUnknown
	}
}

func insert(name string, cp rune) {
	state := uint32(stateNone)
	for i := 0; i < len(name); i++ {
		col := int(name[i] - firstChar)
		last := i == len(name)-1
		cell := transitions[state][col]
		if cell&successBit != 0 {
			return // prefix reference shadows this one
		}
		if last {
			transitions[state][col] = successBit | uint32(cp)
			return
		}
		if cell == stateUnknown {
			next := uint32(len(transitions))
			var row [nInputs]uint32
			fillUnknown(&row)
			transitions = append(transitions, row)
			transitions[state][col] = next
			cell = next
		}
		state = cell
	}
}

// Decode resolves a character reference given the bytes between '&' and
// the terminator. It returns the codepoint and true on success, or false
// for unknown, malformed or empty references.
func Decode(s []byte) (rune, bool) {
	if len(s) > 0 && s[0] == '#' {
		return decodeNumeric(s[1:])
	}
	state := uint32(stateNone)
	for i, b := range s {
		if b < firstChar || b > lastChar {
			return 0, false
		}
		v := transitions[state][b-firstChar]
		if v&successBit != 0 {
			if i == len(s)-1 {
				return rune(v &^ successBit), true
			}
			return 0, false
		}
		state = v
	}
	return 0, false
}

func decodeNumeric(s []byte) (rune, bool) {
	base := rune(10)
	if len(s) > 0 && (s[0] == 'x' || s[0] == 'X') {
		base = 16
		s = s[1:]
	}
	if len(s) == 0 {
		return 0, false
	}
	var v rune
	for _, b := range s {
		var d rune
		switch {
		case b >= '0' && b <= '9':
			d = rune(b - '0')
		case base == 16 && b >= 'a' && b <= 'f':
			d = rune(b-'a') + 10
		case base == 16 && b >= 'A' && b <= 'F':
			d = rune(b-'A') + 10
		default:
			return 0, false
		}
		v = v*base + d
		if v > maxCodepoint {
			return 0, false
		}
	}
	return v, true
}
