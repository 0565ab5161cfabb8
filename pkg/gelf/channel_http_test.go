package gelf_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/saranonuan/winston-log2gelf/pkg/gelf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method        string
	path          string
	contentType   string
	contentLength int64
	body          string
}

func recordingServer(t *testing.T, secure bool) (*httptest.Server, chan recordedRequest) {
	requests := make(chan recordedRequest, 8)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		requests <- recordedRequest{
			method:        r.Method,
			path:          r.URL.Path,
			contentType:   r.Header.Get("Content-Type"),
			contentLength: r.ContentLength,
			body:          string(body),
		}
	})

	if secure {
		return httptest.NewTLSServer(handler), requests
	}

	return httptest.NewServer(handler), requests
}

func settingsForServer(t *testing.T, server *httptest.Server, protocol string) *gelf.Settings {
	parsed, err := url.Parse(server.URL)
	require.NoError(t, err)

	port, err := strconv.Atoi(parsed.Port())
	require.NoError(t, err)

	return &gelf.Settings{
		Host:     parsed.Hostname(),
		Port:     port,
		Protocol: protocol,
	}
}

func receiveRequest(t *testing.T, requests chan recordedRequest) recordedRequest {
	select {
	case request := <-requests:
		return request
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no request was received")

		return recordedRequest{}
	}
}

func TestHttpChannel_Send(t *testing.T) {
	server, requests := recordingServer(t, false)
	defer server.Close()

	channel, err := gelf.NewChannelWithInterfaces(settingsForServer(t, server, gelf.ProtocolHttp), func(err error) {
		assert.FailNow(t, "no error should be reported", err.Error())
	})
	require.NoError(t, err)

	body := `{"short_message":"föö"}`
	channel.Send([]byte(body))

	request := receiveRequest(t, requests)

	assert.Equal(t, http.MethodPost, request.method)
	assert.Equal(t, "/gelf", request.path)
	assert.Equal(t, "application/x-www-form-urlencoded", request.contentType)
	assert.Equal(t, int64(len(body)), request.contentLength, "the content length has to count bytes, not runes")
	assert.Equal(t, body, request.body)

	require.NoError(t, channel.Close())
}

func TestHttpChannel_SendHttpsWithoutVerification(t *testing.T) {
	server, requests := recordingServer(t, true)
	defer server.Close()

	channel, err := gelf.NewChannelWithInterfaces(settingsForServer(t, server, gelf.ProtocolHttps), func(err error) {
		assert.FailNow(t, "no error should be reported", err.Error())
	})
	require.NoError(t, err)

	channel.Send([]byte(`{"short_message":"secure"}`))

	request := receiveRequest(t, requests)

	assert.Equal(t, "/gelf", request.path)
	assert.Equal(t, `{"short_message":"secure"}`, request.body)

	require.NoError(t, channel.Close())
}

func TestHttpChannel_SendHttpsWithVerificationFails(t *testing.T) {
	server, requests := recordingServer(t, true)
	defer server.Close()

	settings := settingsForServer(t, server, gelf.ProtocolHttps)
	settings.VerifyCertificates = true

	var lck sync.Mutex
	var errs []error

	channel, err := gelf.NewChannelWithInterfaces(settings, func(err error) {
		lck.Lock()
		defer lck.Unlock()

		errs = append(errs, err)
	})
	require.NoError(t, err)

	channel.Send([]byte(`{"short_message":"untrusted"}`))

	require.Eventually(t, func() bool {
		lck.Lock()
		defer lck.Unlock()

		return len(errs) == 1
	}, 5*time.Second, 10*time.Millisecond, "the rejected handshake should be reported")

	lck.Lock()
	assert.ErrorContains(t, errs[0], "can not send message to")
	lck.Unlock()

	assert.Empty(t, requests, "no request should reach the server")

	require.NoError(t, channel.Close())
}
