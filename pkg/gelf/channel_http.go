package gelf

import (
	"crypto/tls"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type httpChannel struct {
	client       *resty.Client
	url          string
	errorHandler ErrorHandler
}

// httpChannelFactory serves both the http and the https protocol. The channel
// owns no persistent connection, every message becomes one independent
// request.
func httpChannelFactory(settings *Settings, errorHandler ErrorHandler) (Channel, error) {
	client := resty.New()
	client.SetContentLength(true)

	if settings.Protocol == ProtocolHttps {
		client.SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: !settings.VerifyCertificates,
			MinVersion:         tls.VersionTLS12,
		})
	}

	url := fmt.Sprintf("%s://%s:%d/gelf", settings.Protocol, settings.Host, settings.Port)

	return &httpChannel{
		client:       client,
		url:          url,
		errorHandler: errorHandler,
	}, nil
}

// Send posts the message without waiting for the response. The collector's
// endpoint expects the form content type even though the body is the raw JSON
// text, so both are set explicitly. Status and body of the response carry no
// meaning for delivery and are ignored.
func (c *httpChannel) Send(body []byte) {
	go func() {
		_, err := c.client.R().
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetBody(body).
			Post(c.url)
		if err != nil {
			c.errorHandler(fmt.Errorf("can not send message to %s: %w", c.url, err))
		}
	}()
}

func (c *httpChannel) Close() error {
	return nil
}
