package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValues_UnmarshalKeepsNumberKinds(t *testing.T) {
	var values SetValues
	err := json.Unmarshal([]byte(`{"age": 34, "balance": 10.5, "name": "Ana", "active": true}`), &values)
	require.NoError(t, err)

	assert.Equal(t, json.Number("34"), values["age"])
	assert.Equal(t, json.Number("10.5"), values["balance"])
	assert.Equal(t, "Ana", values["name"])
	assert.Equal(t, true, values["active"])
}

func TestSetValues_UnmarshalEmpty(t *testing.T) {
	var values SetValues
	err := json.Unmarshal([]byte(`{}`), &values)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestSetValues_UnmarshalRejectsNonObject(t *testing.T) {
	var values SetValues
	err := json.Unmarshal([]byte(`[1, 2]`), &values)
	assert.Error(t, err)
}

func TestSetValues_RoundTripThroughFloat64(t *testing.T) {
	// Arguments arrive pre-decoded into float64 and are re-marshalled before
	// binding. An integral float64 re-marshals without a fractional part, so
	// the number kind survives the round trip.
	remarshalled, err := json.Marshal(map[string]any{"age": float64(34), "score": float64(99.5)})
	require.NoError(t, err)

	var values SetValues
	require.NoError(t, json.Unmarshal(remarshalled, &values))

	age, ok := values["age"].(json.Number)
	require.True(t, ok)
	i, err := age.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(34), i)

	score, ok := values["score"].(json.Number)
	require.True(t, ok)
	_, err = score.Int64()
	assert.Error(t, err)
	f, err := score.Float64()
	require.NoError(t, err)
	assert.Equal(t, 99.5, f)
}
