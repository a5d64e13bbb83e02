package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferRoundTrip(t *testing.T) {
	bb := Get()
	defer Put(bb)

	require.Equal(t, 0, bb.Len())

	_, err := bb.WriteString("ari:")
	require.NoError(t, err)
	require.NoError(t, bb.WriteByte('/'))
	_, err = bb.Write([]byte("IANA:bp-agent"))
	require.NoError(t, err)

	require.Equal(t, "ari:/IANA:bp-agent", bb.String())
	require.Equal(t, []byte("ari:/IANA:bp-agent"), bb.Bytes())
}

func TestByteBufferReset(t *testing.T) {
	bb := newByteBuffer(4)
	_, _ = bb.WriteString("hello")
	require.Equal(t, 5, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 4)
}

func TestPoolDiscardsOversizedBuffers(t *testing.T) {
	p := NewPool(8, 16)

	bb := p.Get()
	bb.B = make([]byte, 0, 32)
	p.Put(bb)

	fresh := p.Get()
	require.Less(t, cap(fresh.B), 32)
}

func TestPoolReusesBuffer(t *testing.T) {
	p := NewPool(8, 1024)

	bb := p.Get()
	_, _ = bb.WriteString("abc")
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())
}
