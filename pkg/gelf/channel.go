package gelf

import (
	"fmt"
	"os"
)

const (
	ProtocolTcp   = "tcp"
	ProtocolTls   = "tls"
	ProtocolHttp  = "http"
	ProtocolHttps = "https"
)

// Channel owns the network resource used to deliver serialized messages.
// Send is fire-and-forget: delivery failures are reported to the channel's
// error handler, never to the caller.
type Channel interface {
	Send(body []byte)
	Close() error
}

// ErrorHandler observes delivery failures of a channel.
type ErrorHandler func(err error)

func defaultErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Failed to write to log, %s\n", err)
}

type ChannelFactory func(settings *Settings, errorHandler ErrorHandler) (Channel, error)

// The set of supported protocols is closed.
var channelFactories = map[string]ChannelFactory{
	ProtocolTcp:   tcpChannelFactory,
	ProtocolTls:   tcpChannelFactory,
	ProtocolHttp:  httpChannelFactory,
	ProtocolHttps: httpChannelFactory,
}

func NewChannel(settings *Settings) (Channel, error) {
	return NewChannelWithInterfaces(settings, defaultErrorHandler)
}

func NewChannelWithInterfaces(settings *Settings, errorHandler ErrorHandler) (Channel, error) {
	factory, ok := channelFactories[settings.Protocol]
	if !ok {
		return nil, fmt.Errorf("there is no channel of type %s", settings.Protocol)
	}

	return factory(settings, errorHandler)
}
