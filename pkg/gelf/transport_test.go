package gelf

import (
	"testing"
	"time"

	"github.com/saranonuan/winston-log2gelf/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureChannel struct {
	bodies [][]byte
	closed bool
}

func (c *captureChannel) Send(body []byte) {
	c.bodies = append(c.bodies, body)
}

func (c *captureChannel) Close() error {
	c.closed = true

	return nil
}

func getTestTransport(settings *Settings) (*Transport, *captureChannel) {
	cl := clock.NewFakeClockAt(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	channel := &captureChannel{}

	return NewTransportWithInterfaces(cl, settings, channel), channel
}

func TestTransport_Log(t *testing.T) {
	transport, channel := getTestTransport(getTestSettings())

	err := transport.Log("error", "disk full", map[string]any{
		"code": "ENOSPC",
	})
	require.NoError(t, err)

	require.Len(t, channel.bodies, 1)
	assert.JSONEq(t, `{
		"timestamp": 1609459200,
		"level": 3,
		"host": "api-host",
		"short_message": "disk full",
		"full_message": {
			"code": "ENOSPC"
		},
		"_service": "api",
		"_environment": "prod"
	}`, string(channel.bodies[0]))
}

func TestTransport_LogSilent(t *testing.T) {
	settings := getTestSettings()
	settings.Silent = true

	transport, channel := getTestTransport(settings)

	err := transport.Log("info", "nobody listens", nil)
	require.NoError(t, err)

	assert.Empty(t, channel.bodies)
}

func TestTransport_LogEncodeError(t *testing.T) {
	transport, channel := getTestTransport(getTestSettings())

	err := transport.Log("info", "broken meta", map[string]any{
		"callback": func() {},
	})

	assert.ErrorContains(t, err, "can not encode gelf message")
	assert.Empty(t, channel.bodies)
}

func TestTransport_Close(t *testing.T) {
	transport, channel := getTestTransport(getTestSettings())

	require.NoError(t, transport.Close())
	assert.True(t, channel.closed)
}

func TestNewTransport_AppliesDefaults(t *testing.T) {
	transport, err := NewTransport(&Settings{
		Protocol: ProtocolHttp,
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", transport.settings.Host)
	assert.Equal(t, 12201, transport.settings.Port)
	assert.Equal(t, ProtocolHttp, transport.settings.Protocol, "explicit settings should survive the defaults")
	assert.Equal(t, "nodejs", transport.settings.Service)
	assert.Equal(t, "info", transport.settings.Level)
	assert.Equal(t, "development", transport.settings.Environment)
	assert.NotEmpty(t, transport.settings.Hostname)
}

func TestNewTransport_UnknownProtocol(t *testing.T) {
	_, err := NewTransport(&Settings{
		Protocol: "udp",
	})

	assert.ErrorContains(t, err, "there is no channel of type udp")
}
