package strutil

// MaxCodepoint is the largest codepoint representable in UTF-8.
const MaxCodepoint = 0x10FFFF

// AppendRune appends the UTF-8 encoding of c to the buffer. Codepoints
// encode to one through four bytes; anything above MaxCodepoint is rejected
// and the buffer is left unchanged.
func (b *Buffer) AppendRune(c rune) bool {
	switch {
	case c < 0:
		return false
	case c < 0x80:
		b.Grow(1)
		b.buf = append(b.buf, byte(c))
	case c < 0x800:
		b.Grow(2)
		b.buf = append(b.buf,
			0xC0|byte(c>>6),
			0x80|byte(c&0x3F))
	case c < 0x10000:
		b.Grow(3)
		b.buf = append(b.buf,
			0xE0|byte(c>>12),
			0x80|byte(c>>6&0x3F),
			0x80|byte(c&0x3F))
	case c <= MaxCodepoint:
		b.Grow(4)
		b.buf = append(b.buf,
			0xF0|byte(c>>18),
			0x80|byte(c>>12&0x3F),
			0x80|byte(c>>6&0x3F),
			0x80|byte(c&0x3F))
	default:
		return false
	}
	b.terminate()
	return true
}

// EncodeRune returns the UTF-8 encoding of c in a fresh buffer, or false if
// c is not a Unicode codepoint.
func EncodeRune(c rune) ([]byte, bool) {
	var b Buffer
	b.Init()
	if !b.AppendRune(c) {
		return nil, false
	}
	return b.Bytes(), true
}
