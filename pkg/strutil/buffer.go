// Package strutil provides the byte-handling primitives used by the
// tokenizer: a growable byte buffer with block-sized capacity management,
// fragment comparison helpers, and a UTF-8 encoder for decoded character
// references.
package strutil

// BlockSize is the allocation granularity of a Buffer. Capacity always grows
// in multiples of this size and a freshly initialized or cleared buffer
// shrinks back to a single block.
const BlockSize = 64

// Buffer is a growable, owned byte container. The backing storage always
// keeps one spare byte holding a NUL terminator past the logical length;
// the terminator is a debugging convenience and is never part of Len or
// Bytes.
//
// Growing the buffer may move the backing storage, so any slice previously
// obtained from Bytes must be considered stale after Append, Reserve,
// CopyFragment or AppendRune.
type Buffer struct {
	buf []byte
}

// Init allocates the initial block and zero-terminates it. A Buffer must be
// initialized before first use; Init may also be used to re-initialize an
// existing buffer in place.
func (b *Buffer) Init() {
	b.buf = make([]byte, 0, BlockSize)
	b.terminate()
}

// Len returns the number of bytes stored, excluding the NUL terminator.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the current capacity of the backing storage.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Bytes returns a view of the stored bytes. The view is invalidated by any
// mutating operation.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns a copy of the stored bytes as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Clear drops the contents and shrinks the backing storage back to a single
// block if it had grown beyond it.
func (b *Buffer) Clear() {
	if cap(b.buf) > BlockSize {
		b.buf = make([]byte, 0, BlockSize)
	} else {
		b.buf = b.buf[:0]
	}
	b.terminate()
}

// Reserve ensures capacity for at least total bytes plus the terminator.
// Returns the resulting capacity.
func (b *Buffer) Reserve(total int) int {
	if total+1 > cap(b.buf) {
		newcap := ((total+1)/BlockSize + 1) * BlockSize
		nb := make([]byte, len(b.buf), newcap)
		copy(nb, b.buf)
		b.buf = nb
		b.terminate()
	}
	return cap(b.buf)
}

// Grow ensures capacity for add more bytes past the current length.
// Returns the resulting capacity.
func (b *Buffer) Grow(add int) int {
	return b.Reserve(len(b.buf) + add)
}

// Append copies p onto the end of the buffer.
func (b *Buffer) Append(p []byte) {
	b.Grow(len(p))
	b.buf = append(b.buf, p...)
	b.terminate()
}

// AppendString copies s onto the end of the buffer.
func (b *Buffer) AppendString(s string) {
	b.Grow(len(s))
	b.buf = append(b.buf, s...)
	b.terminate()
}

// Truncate shortens the buffer to n bytes. It panics if n is negative or
// past the current length.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.buf) {
		panic("strutil: Truncate length out of range")
	}
	b.buf = b.buf[:n]
	b.terminate()
}

// CopyFragment writes frag into the buffer at the given offset, extending
// the length if the fragment ends past it.
func (b *Buffer) CopyFragment(offset int, frag []byte) {
	if end := offset + len(frag); end > len(b.buf) {
		b.Reserve(end)
		b.buf = b.buf[:end]
	}
	copy(b.buf[offset:], frag)
	b.terminate()
}

// Swap exchanges the contents of two buffers without copying.
func (b *Buffer) Swap(o *Buffer) {
	b.buf, o.buf = o.buf, b.buf
}

// terminate writes the NUL past the logical end. The spare byte is
// guaranteed by Init/Reserve keeping cap > len.
func (b *Buffer) terminate() {
	b.buf[len(b.buf) : len(b.buf)+1][0] = 0
}
