package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var v struct {
		Start Date  `json:"start"`
		End   *Date `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-03-01","end":null}`), &v))
	assert.Equal(t, NewDate(2024, time.March, 1), v.Start)
	assert.Nil(t, v.End)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-03-01","end":null}`, string(out))
}

func TestDate_UnmarshalTimestamp(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T15:04:05Z"`), &d))
	assert.Equal(t, "2024-03-01", d.String())
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"01/03/2024"`), &d)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestDate_ScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-06", d.String())

	require.NoError(t, d.Scan("2024-07-08"))
	assert.Equal(t, "2024-07-08", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, 1, 1)
	b := a.AddDays(1)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
}
