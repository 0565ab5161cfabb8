package log

import (
	"fmt"
	"time"

	"github.com/saranonuan/winston-log2gelf/pkg/cfg"
	"github.com/saranonuan/winston-log2gelf/pkg/gelf"
)

func init() {
	AddHandlerFactory("gelf", handlerGelfFactory)
}

type HandlerGelfSettings struct {
	Level    string                    `cfg:"level" default:"info"`
	Channels map[string]ChannelSetting `cfg:"channels"`
}

func handlerGelfFactory(config cfg.Config, name string) (Handler, error) {
	settings := &HandlerGelfSettings{}
	if err := UnmarshalHandlerSettingsFromConfig(config, name, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal handler settings: %w", err)
	}

	transportSettings := &gelf.Settings{}
	if err := UnmarshalHandlerSettingsFromConfig(config, name, transportSettings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transport settings: %w", err)
	}

	transport, err := gelf.NewTransport(transportSettings)
	if err != nil {
		return nil, fmt.Errorf("can not create gelf transport: %w", err)
	}

	channels := make(Channels, len(settings.Channels))
	for channel, level := range settings.Channels {
		channels[channel] = LevelPriority(level.Level)
	}

	return NewHandlerGelfWithInterfaces(settings.Level, channels, transport), nil
}

// transportLevels maps handler level priorities to the level names understood
// by the gelf transport. Trace has no gelf counterpart and maps to the most
// verbose name.
var transportLevels = map[int]string{
	PriorityTrace: "silly",
	PriorityDebug: "debug",
	PriorityInfo:  "info",
	PriorityWarn:  "warn",
	PriorityError: "error",
}

type handlerGelf struct {
	level     int
	channels  Channels
	transport *gelf.Transport
}

func NewHandlerGelfWithInterfaces(level string, channels Channels, transport *gelf.Transport) Handler {
	return &handlerGelf{
		level:     LevelPriority(level),
		channels:  channels,
		transport: transport,
	}
}

func (h *handlerGelf) Channels() Channels {
	return h.channels
}

func (h *handlerGelf) Level() int {
	return h.level
}

func (h *handlerGelf) Log(_ time.Time, level int, msg string, args []any, logErr error, data Data) error {
	meta := mergeFields(data.Fields, nil)

	if len(data.ContextFields) > 0 {
		meta["context"] = mergeFields(data.ContextFields, nil)
	}

	if logErr != nil {
		meta["error"] = logErr.Error()
	}

	return h.transport.Log(transportLevels[level], fmt.Sprintf(msg, args...), meta)
}
