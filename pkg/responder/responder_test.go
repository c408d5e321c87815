package responder

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	assert.Equal(t, "1", Respond("version"))
	assert.Equal(t, "1", Respond("version\n"))
	assert.Equal(t, "N/A", Respond("status"))
	assert.Equal(t, "N/A", Respond(""))
}

func TestServiceAnswersOverUDP(t *testing.T) {
	svc := NewService("127.0.0.1:0")
	require.NoError(t, svc.Start(context.Background()))
	defer svc.Stop()

	conn, err := net.Dial("udp", svc.conn.LocalAddr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("version"))
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	buffer := make([]byte, 16)
	n, err := conn.Read(buffer)
	require.NoError(t, err)
	assert.Equal(t, "1", string(buffer[:n]))
}

func TestServiceWithoutAddressIsNoop(t *testing.T) {
	svc := NewService("")
	require.NoError(t, svc.Start(context.Background()))
	svc.Stop()
}
