package gelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityOf(t *testing.T) {
	severities := map[string]int{
		"error":   3,
		"warn":    4,
		"info":    5,
		"verbose": 6,
		"debug":   7,
		"silly":   7,
	}

	for level, expected := range severities {
		assert.Equal(t, expected, SeverityOf(level), "severity of level %s should match", level)
	}
}

func TestSeverityOf_Unrecognized(t *testing.T) {
	assert.Equal(t, SeverityEmergency, SeverityOf("fatal"))
	assert.Equal(t, SeverityEmergency, SeverityOf(""))
	assert.Equal(t, SeverityEmergency, SeverityOf("INFO"), "level names are case sensitive")
}
