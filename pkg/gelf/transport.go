package gelf

import (
	"fmt"

	"github.com/imdario/mergo"
	"github.com/saranonuan/winston-log2gelf/pkg/clock"
)

// Transport is the facade a logging library hands its messages to. It holds
// exactly one delivery channel, selected by the configured protocol.
type Transport struct {
	settings *Settings
	encoder  *Encoder
	channel  Channel
}

// NewTransport fills empty settings fields with their defaults and builds the
// channel for the configured protocol. An unsupported protocol is a
// construction error, not a silently dead transport.
func NewTransport(settings *Settings) (*Transport, error) {
	if settings == nil {
		settings = &Settings{}
	}

	if err := mergo.Merge(settings, *DefaultSettings()); err != nil {
		return nil, fmt.Errorf("can not apply default settings: %w", err)
	}

	channel, err := NewChannel(settings)
	if err != nil {
		return nil, fmt.Errorf("can not create channel for protocol %s: %w", settings.Protocol, err)
	}

	return NewTransportWithInterfaces(clock.Provider, settings, channel), nil
}

func NewTransportWithInterfaces(clock clock.Clock, settings *Settings, channel Channel) *Transport {
	return &Transport{
		settings: settings,
		encoder:  NewEncoderWithInterfaces(clock, settings),
		channel:  channel,
	}
}

// Log encodes a single message and hands it to the delivery channel. A nil
// return means the message was accepted, not that it was delivered: delivery
// failures go to the channel's error handler. Only encoding failures are
// returned, they indicate a programming error in the caller.
func (t *Transport) Log(level string, message string, meta any) error {
	if t.settings.Silent {
		return nil
	}

	body, err := t.encoder.Encode(level, message, meta)
	if err != nil {
		return fmt.Errorf("can not encode gelf message: %w", err)
	}

	t.channel.Send(body)

	return nil
}

// Close releases the channel's connection. Messages sent afterwards are
// dropped and reported.
func (t *Transport) Close() error {
	if err := t.channel.Close(); err != nil {
		return fmt.Errorf("can not close channel: %w", err)
	}

	return nil
}
