package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	var rec struct {
		ID ID `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &rec))
	assert.Equal(t, ID("42"), rec.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "42"}`), &rec))
	assert.Equal(t, ID("42"), rec.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &rec))
	assert.Equal(t, ID(""), rec.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id": 3.5}`), &rec))
	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &rec))
}

func TestIDMarshal(t *testing.T) {
	numeric, err := json.Marshal(ID("42"))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(numeric))

	text, err := json.Marshal(ID("abc-1"))
	require.NoError(t, err)
	assert.Equal(t, `"abc-1"`, string(text))
}

func TestIDInt(t *testing.T) {
	n, err := ID("42").Int()
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ID("abc").Int()
	assert.Error(t, err)

	_, err = ID("").Int()
	assert.Error(t, err)
}
