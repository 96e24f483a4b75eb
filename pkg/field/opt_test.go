package field

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptDistinguishesAbsentNullAndValue(t *testing.T) {
	var payload struct {
		Name  Opt[string] `json:"name"`
		Notes Opt[string] `json:"notes"`
		Count Opt[int32]  `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"notes": null, "count": 3}`), &payload))

	assert.False(t, payload.Name.IsSet())

	assert.True(t, payload.Notes.IsSet())
	assert.True(t, payload.Notes.IsNull())
	_, ok := payload.Notes.Value()
	assert.False(t, ok)

	assert.True(t, payload.Count.IsSet())
	v, ok := payload.Count.Value()
	require.True(t, ok)
	assert.Equal(t, int32(3), v)
}

func TestOptConstructors(t *testing.T) {
	some := Some("hello")
	assert.True(t, some.IsSet())
	v, ok := some.Value()
	require.True(t, ok)
	assert.Equal(t, "hello", v)
	require.NotNil(t, some.Ptr())
	assert.Equal(t, "hello", *some.Ptr())

	null := Null[string]()
	assert.True(t, null.IsSet())
	assert.True(t, null.IsNull())
	assert.Nil(t, null.Ptr())
}

func TestOptMarshalRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Some(int32(7)))
	require.NoError(t, err)
	assert.JSONEq(t, `7`, string(raw))

	raw, err = json.Marshal(Null[int32]())
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(raw))
}
