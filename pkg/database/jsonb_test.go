package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONB_Scan(t *testing.T) {
	var columns JSONB[[]string]
	require.NoError(t, columns.Scan([]byte(`["title","status"]`)))
	assert.Equal(t, []string{"title", "status"}, columns.Data)

	// Some drivers hand jsonb back as text.
	var fromString JSONB[map[string]string]
	require.NoError(t, fromString.Scan(`{"search":"radar"}`))
	assert.Equal(t, map[string]string{"search": "radar"}, fromString.Data)

	var bad JSONB[[]string]
	assert.Error(t, bad.Scan(42))
}

func TestJSONB_TransparentJSON(t *testing.T) {
	// On the API surface the wrapper is invisible: the payload marshals as
	// itself, not as {"Data": ...}.
	payload := NewJSONB([]string{"title", "poNumber"})
	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `["title","poNumber"]`, string(out))

	var back JSONB[[]string]
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, payload.Data, back.Data)
}
