package backend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	assert.Equal(t, "", Display(nil))
	assert.Equal(t, "hello world", Display("hello world"))
	assert.Equal(t, "3", Display(json.Number("3")))
	assert.Equal(t, "false", Display(false))
	assert.Equal(t, `{"a":[1,2],"b":null}`, Display(map[string]any{"b": nil, "a": []any{json.Number("1"), json.Number("2")}}))
	assert.Equal(t, `["<b>"]`, Display([]any{"<b>"}))
}
