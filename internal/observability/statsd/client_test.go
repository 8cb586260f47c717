package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledClientDropsMetrics(t *testing.T) {
	client, err := NewClient(Config{Enabled: false, Address: "localhost:8125"})
	require.NoError(t, err)

	assert.False(t, client.Enabled())
	// Must not panic or block without a connection.
	client.Count("http.requests", 1, nil)
	client.Timing("http.request_duration", time.Millisecond, nil)
	assert.NoError(t, client.Close())
}

func TestEnabledWithoutAddressStaysDisabled(t *testing.T) {
	client, err := NewClient(Config{Enabled: true, Address: "   "})
	require.NoError(t, err)
	assert.False(t, client.Enabled())
}

func TestClientEmitsLineProtocol(t *testing.T) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client, err := NewClient(Config{
		Enabled: true,
		Address: conn.LocalAddr().String(),
		Prefix:  "inkwell.",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.True(t, client.Enabled())

	client.Count("http.requests", 1, map[string]string{
		"method": "GET",
		"status": "200",
	})

	buf := make([]byte, 512)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := conn.ReadFrom(buf)
	require.NoError(t, err)

	assert.Equal(t, "inkwell.http.requests:1|c|#method:GET,status:200", string(buf[:n]))
}

func TestNormalizeMetricName(t *testing.T) {
	tests := map[string]string{
		"http.requests":       "http.requests",
		"  GET /posts/{id}  ": "GET__posts_{id}",
		"dots..collapse.":     "dots.collapse",
		"":                    "",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeMetricName(in), "input %q", in)
	}
}

func TestClientCloseIsIdempotent(t *testing.T) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client, err := NewClient(Config{Enabled: true, Address: conn.LocalAddr().String()})
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
	assert.False(t, client.Enabled())

	// Emitting after close is a no-op.
	client.Count("http.requests", 1, nil)
}
