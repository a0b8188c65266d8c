package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_TruncatesToMidnight(t *testing.T) {
	d := NewDate(time.Date(1965, 8, 1, 23, 59, 59, 0, time.UTC))

	assert.Equal(t, "1965-08-01", d.Format("2006-01-02"))
	assert.Zero(t, d.Hour())
	assert.Zero(t, d.Minute())
}

func TestDate_JSON(t *testing.T) {
	t.Run("marshals as YYYY-MM-DD", func(t *testing.T) {
		d := NewDate(time.Date(1965, 8, 1, 14, 30, 0, 0, time.UTC))
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"1965-08-01"`, string(data))
	})

	t.Run("accepts YYYY-MM-DD", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"1965-08-01"`), &d))
		assert.Equal(t, "1965-08-01", d.Format("2006-01-02"))
	})

	t.Run("accepts RFC3339 and drops the time", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"1965-08-01T14:30:00Z"`), &d))
		assert.Equal(t, "1965-08-01", d.Format("2006-01-02"))
		assert.Zero(t, d.Hour())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"first of August"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`1965`), &d))
	})
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1965, 8, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "1965-08-01", d.Format("2006-01-02"))

	require.NoError(t, d.Scan("2001-05-01 00:00:00+00:00"))
	assert.Equal(t, "2001-05-01", d.Format("2006-01-02"))

	assert.Error(t, d.Scan(42))
}
