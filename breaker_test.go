package dict

import (
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerConnPassthrough(t *testing.T) {
	conn, _ := newTestConn(t,
		"150 1 definitions retrieved\r\n",
		"151 \"test\" wn \"WordNet (r) 3.0\"\r\n",
		"n. A trial.\r\n",
		".\r\n",
		"250 ok\r\n",
	)

	bc := NewBreakerConn(conn, DefaultBreakerSettings("test", time.Minute))

	defs, err := bc.Define("test", "wn")
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "test", defs[0].Word)
	assert.Equal(t, gobreaker.StateClosed, bc.State())
}

func TestBreakerConnEmptyResultStaysClosed(t *testing.T) {
	conn, _ := newTestConn(t, "552 no match\r\n")
	bc := NewBreakerConn(conn, DefaultBreakerSettings("test", time.Minute))

	words, err := bc.Match("zzyzx", "exact", "wn")
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.Equal(t, gobreaker.StateClosed, bc.State())
}

func TestBreakerConnOpensAfterRepeatedFailures(t *testing.T) {
	conn, mock := newTestConn(t,
		"500 syntax error\r\n",
		"500 syntax error\r\n",
		"500 syntax error\r\n",
	)

	bc := NewBreakerConn(conn, DefaultBreakerSettings("test", time.Minute))

	for i := 0; i < 3; i++ {
		_, err := bc.Define("test", "wn")
		var protoErr *ProtocolError
		require.ErrorAs(t, err, &protoErr)
	}

	require.Equal(t, gobreaker.StateOpen, bc.State())

	// Open breaker fails fast: nothing more is written to the wire.
	_, err := bc.Define("test", "wn")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, strings.Count(mock.Written(), "DEFINE"))
}
