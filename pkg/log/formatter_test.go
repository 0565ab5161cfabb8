package log_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/saranonuan/winston-log2gelf/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterConsole(t *testing.T) {
	color.NoColor = true

	data := log.Data{
		Channel:       "main",
		ContextFields: map[string]any{},
		Fields: map[string]any{
			"user_id": 42,
		},
	}

	bytes, err := log.FormatterConsole("12:00:00.000", log.PriorityInfo, "hello %s", []any{"world"}, nil, data)
	require.NoError(t, err)

	line := string(bytes)
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "12:00:00.000")
	assert.Contains(t, line, "main")
	assert.Contains(t, line, "info")
	assert.Contains(t, line, "hello world")
	assert.Contains(t, line, "user_id: 42")
}

func TestFormatterConsole_Error(t *testing.T) {
	color.NoColor = true

	data := log.Data{
		Channel:       "main",
		ContextFields: map[string]any{},
		Fields:        map[string]any{},
	}

	bytes, err := log.FormatterConsole("12:00:00.000", log.PriorityError, "%s", []any{"it broke"}, fmt.Errorf("it broke"), data)
	require.NoError(t, err)

	assert.Contains(t, string(bytes), "ERR: it broke")
}
