package hugo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeParams_Precedence(t *testing.T) {
	computed := map[string]any{
		"search": map[string]any{"enable": true, "type": "flexsearch"},
		"theme":  "system",
		"tags":   []any{"a", "b"},
	}
	base := map[string]any{
		"search": map[string]any{"type": "lunr"},
		"tags":   []any{"c"},
		"shared": 1,
	}
	overrides := map[string]any{
		"search": map[string]any{"enable": false},
		"shared": 2,
	}

	got := ComposeParams(base, overrides, computed)

	assert.Equal(t, map[string]any{
		"search": map[string]any{"enable": false, "type": "lunr"},
		"theme":  "system",
		"tags":   []any{"c"},
		"shared": 2,
	}, got)
}

func TestComposeParams_DoesNotMutateInputs(t *testing.T) {
	computed := map[string]any{"nested": map[string]any{"a": 1}}
	base := map[string]any{"nested": map[string]any{"b": 2}, "list": []any{map[string]any{"x": 1}}}

	got := ComposeParams(base, nil, computed)
	got["nested"].(map[string]any)["a"] = 99
	got["list"].([]any)[0].(map[string]any)["x"] = 99

	assert.Equal(t, map[string]any{"a": 1}, computed["nested"])
	assert.Equal(t, map[string]any{"b": 2}, base["nested"])
	assert.Equal(t, 1, base["list"].([]any)[0].(map[string]any)["x"])
}

func TestComposeParams_NilInputs(t *testing.T) {
	assert.Empty(t, ComposeParams(nil, nil, nil))
	assert.Equal(t, map[string]any{"k": "v"}, ComposeParams(nil, map[string]any{"k": "v"}, nil))
}

func TestComposeParams_ScalarReplacesMap(t *testing.T) {
	got := ComposeParams(map[string]any{"search": false}, nil, map[string]any{"search": map[string]any{"enable": true}})
	assert.Equal(t, false, got["search"])
}
