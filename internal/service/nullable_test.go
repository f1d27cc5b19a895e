package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableUnmarshal(t *testing.T) {
	type payload struct {
		SprintID Nullable[int64]  `json:"sprint_id"`
		Title    Nullable[string] `json:"title"`
	}

	t.Run("absent field stays unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.SprintID.Set)
		assert.False(t, p.SprintID.Valid)
	})

	t.Run("explicit null is set but not valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"sprint_id": null}`), &p))
		assert.True(t, p.SprintID.Set)
		assert.False(t, p.SprintID.Valid)
		assert.Nil(t, p.SprintID.Ptr())
	})

	t.Run("value is set and valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"sprint_id": 42, "title": "fix login"}`), &p))
		assert.True(t, p.SprintID.Set)
		assert.True(t, p.SprintID.Valid)
		assert.Equal(t, int64(42), p.SprintID.Value)
		require.NotNil(t, p.Title.Ptr())
		assert.Equal(t, "fix login", *p.Title.Ptr())
	})

	t.Run("type mismatch errors", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"sprint_id": "abc"}`), &p))
	})
}
