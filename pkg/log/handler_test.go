package log_test

import (
	"testing"

	"github.com/saranonuan/winston-log2gelf/pkg/cfg"
	"github.com/saranonuan/winston-log2gelf/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromConfig(t *testing.T) {
	config := cfg.New()
	if err := config.Option(cfg.WithConfigFile("testdata/config.test.yml", "yml")); err != nil {
		assert.FailNow(t, "can not load config: %s", err)
	}

	var err error
	var handlers []log.Handler

	if handlers, err = log.NewHandlersFromConfig(config); err != nil {
		assert.FailNow(t, "can not create logger: %s", err)
	}

	require.Len(t, handlers, 2)

	levels := make(map[int]log.Handler, len(handlers))
	for _, handler := range handlers {
		levels[handler.Level()] = handler
	}

	// the iowriter handler carries no own level and inherits log.level
	ioHandler, ok := levels[log.PriorityWarn]
	require.True(t, ok, "there should be a handler on the inherited level")
	assert.Equal(t, log.Channels{"important": log.PriorityDebug}, ioHandler.Channels())

	gelfHandler, ok := levels[log.PriorityError]
	require.True(t, ok, "there should be a handler on the configured level")
	assert.Empty(t, gelfHandler.Channels())
}

func TestCreateFromConfig_UnknownType(t *testing.T) {
	config := cfg.New()
	err := config.Option(cfg.WithConfigSetting("log.handlers.broken.type", "xyz"))
	require.NoError(t, err)

	_, err = log.NewHandlersFromConfig(config)

	assert.EqualError(t, err, "there is no logging handler of type xyz")
}
