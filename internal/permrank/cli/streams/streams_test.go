package streams

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreams(t *testing.T) {
	in := NewIn(strings.NewReader("abc"))
	require.False(t, in.IsTerminal())

	buf := make([]byte, 3)
	n, err := in.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "abc", string(buf[:n]))
	require.NoError(t, in.Close())

	var out bytes.Buffer

	o := NewOut(&out)
	require.False(t, o.IsTerminal())

	_, err = o.Write([]byte("rank"))
	require.NoError(t, err)
	require.NoError(t, o.Close())
	require.Equal(t, "rank", out.String())
}
