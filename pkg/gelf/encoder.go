package gelf

import (
	"encoding/json"
	"fmt"

	"github.com/saranonuan/winston-log2gelf/pkg/clock"
)

type Encoder struct {
	clock    clock.Clock
	settings *Settings
}

func NewEncoder(settings *Settings) *Encoder {
	return NewEncoderWithInterfaces(clock.Provider, settings)
}

func NewEncoderWithInterfaces(clock clock.Clock, settings *Settings) *Encoder {
	return &Encoder{
		clock:    clock,
		settings: settings,
	}
}

// Encode assembles the GELF message for a single log call and serializes it.
// The timestamp is the current time truncated to whole seconds.
func (e *Encoder) Encode(level string, message string, meta any) ([]byte, error) {
	msg := Message{
		Timestamp:    e.clock.Now().Unix(),
		Level:        SeverityOf(level),
		Host:         e.settings.Hostname,
		ShortMessage: shortMessage(message, meta),
		FullMessage:  NormalizeMeta(meta, map[string]any{}),
		Service:      e.settings.Service,
		Environment:  e.settings.Environment,
		Release:      e.settings.Release,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("can not marshal gelf message: %w", err)
	}

	return body, nil
}

// shortMessage is never empty: it falls back to a message carried in the
// metadata and finally to a fixed placeholder.
func shortMessage(message string, meta any) string {
	if message != "" {
		return message
	}

	if m, ok := meta.(map[string]any); ok {
		if s, ok := m["message"].(string); ok && s != "" {
			return s
		}
	}

	return "No message"
}
