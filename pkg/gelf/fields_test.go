package gelf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMeta_Nil(t *testing.T) {
	normalized := NormalizeMeta(nil, map[string]any{})

	assert.Equal(t, map[string]any{}, normalized)
}

func TestNormalizeMeta_NilWithStatics(t *testing.T) {
	normalized := NormalizeMeta(nil, map[string]any{
		"service": "api",
	})

	assert.Equal(t, map[string]any{
		"service": "api",
	}, normalized)
}

func TestNormalizeMeta_Error(t *testing.T) {
	normalized := NormalizeMeta(fmt.Errorf("disk full"), map[string]any{})

	assert.Equal(t, map[string]any{
		"error": "disk full",
	}, normalized)
}

func TestNormalizeMeta_MapReducesErrorValues(t *testing.T) {
	cause := fmt.Errorf("disk full")
	meta := map[string]any{
		"code":  "ENOSPC",
		"cause": cause,
	}

	normalized := NormalizeMeta(meta, map[string]any{})

	assert.Equal(t, map[string]any{
		"code":  "ENOSPC",
		"cause": "disk full",
	}, normalized)
	assert.Equal(t, cause, meta["cause"], "the input metadata should not be mutated")
}

func TestNormalizeMeta_StaticsWinOnCollision(t *testing.T) {
	meta := map[string]any{
		"env": "local",
		"request": map[string]any{
			"id":   "r-1",
			"path": "/health",
		},
	}
	statics := map[string]any{
		"env": "prod",
		"request": map[string]any{
			"path": "/gelf",
		},
	}

	normalized := NormalizeMeta(meta, statics)

	assert.Equal(t, map[string]any{
		"env": "prod",
		"request": map[string]any{
			"id":   "r-1",
			"path": "/gelf",
		},
	}, normalized, "nested maps should merge recursively with statics winning")
}

func TestNormalizeMeta_ScalarPassesThrough(t *testing.T) {
	assert.Equal(t, "just a string", NormalizeMeta("just a string", map[string]any{"env": "prod"}))
	assert.Equal(t, 42, NormalizeMeta(42, map[string]any{}))
}

func TestMergeMeta_DoesNotMutateInputs(t *testing.T) {
	target := map[string]any{
		"a": 1,
		"nested": map[string]any{
			"b": 2,
		},
	}
	source := map[string]any{
		"nested": map[string]any{
			"c": 3,
		},
	}

	merged := mergeMeta(target, source)

	assert.Equal(t, map[string]any{
		"a": 1,
		"nested": map[string]any{
			"b": 2,
			"c": 3,
		},
	}, merged)
	assert.Equal(t, map[string]any{"b": 2}, target["nested"], "the target map should be left alone")
	assert.Equal(t, map[string]any{"c": 3}, source["nested"], "the source map should be left alone")
}

func TestMergeMeta_ScalarOverwritesMap(t *testing.T) {
	merged := mergeMeta(
		map[string]any{"v": map[string]any{"a": 1}},
		map[string]any{"v": "flat"},
	)

	assert.Equal(t, map[string]any{"v": "flat"}, merged)
}
