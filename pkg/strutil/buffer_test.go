package strutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferInit(t *testing.T) {
	var b Buffer
	b.Init()

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, BlockSize, b.Cap())
	assert.Equal(t, byte(0), b.buf[:1][0], "freshly initialized buffer must be NUL-terminated")
}

func TestBufferAppend(t *testing.T) {
	var b Buffer
	b.Init()

	b.Append([]byte("hello"))
	b.AppendString(" world")

	assert.Equal(t, 11, b.Len())
	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, byte(0), b.buf[:12][11], "terminator must follow the content")
}

func TestBufferGrowthBlocks(t *testing.T) {
	var b Buffer
	b.Init()

	payload := bytes.Repeat([]byte("x"), 3*BlockSize+7)
	b.Append(payload)

	require.Equal(t, len(payload), b.Len())
	assert.Equal(t, 0, b.Cap()%BlockSize, "capacity must be a multiple of the block size")
	assert.Greater(t, b.Cap(), b.Len(), "one spare byte for the terminator")
	assert.True(t, bytes.Equal(payload, b.Bytes()))
}

func TestBufferClearShrinks(t *testing.T) {
	var b Buffer
	b.Init()
	b.Append(bytes.Repeat([]byte("y"), 10*BlockSize))

	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, BlockSize, b.Cap())
}

func TestBufferTruncate(t *testing.T) {
	var b Buffer
	b.Init()
	b.Append([]byte("abcdef"))

	b.Truncate(3)

	assert.Equal(t, "abc", b.String())
	assert.Equal(t, byte(0), b.buf[:4][3])
}

func TestBufferCopyFragment(t *testing.T) {
	var b Buffer
	b.Init()
	b.Append([]byte("0123456789"))

	b.CopyFragment(4, []byte("abcdefgh")) // extends past the current length

	assert.Equal(t, "0123abcdefgh", b.String())

	b.Clear()
	b.CopyFragment(0, []byte("key"))
	assert.Equal(t, "key", b.String())
}

func TestBufferSwap(t *testing.T) {
	var a, b Buffer
	a.Init()
	b.Init()
	a.AppendString("first")
	b.AppendString("second")

	a.Swap(&b)

	assert.Equal(t, "second", a.String())
	assert.Equal(t, "first", b.String())
}

func TestBufferReserveKeepsContent(t *testing.T) {
	var b Buffer
	b.Init()
	b.AppendString("stay")

	b.Reserve(5 * BlockSize)

	assert.Equal(t, "stay", b.String())
	assert.GreaterOrEqual(t, b.Cap(), 5*BlockSize+1)
}
