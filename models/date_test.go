package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	t.Run("date renders as YYYY-MM-DD", func(t *testing.T) {
		b, err := json.Marshal(NewDate(2026, time.July, 1))
		require.NoError(t, err)
		assert.Equal(t, `"2026-07-01"`, string(b))
	})

	t.Run("zero date renders as null", func(t *testing.T) {
		b, err := json.Marshal(Date{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(b))
	})
}

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := NewDate(2026, time.July, 14)

		b, err := json.Marshal(want)
		require.NoError(t, err)

		var got Date
		require.NoError(t, json.Unmarshal(b, &got))
		assert.True(t, got.Time.Equal(want.Time))
	})

	t.Run("null yields the zero date", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte("null"), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("wrong layout is rejected", func(t *testing.T) {
		var d Date
		require.Error(t, json.Unmarshal([]byte(`"01.07.2026"`), &d))
	})
}

func TestDate_ScanAndValue(t *testing.T) {
	t.Run("scans time.Time", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)))
		assert.True(t, d.Time.Equal(NewDate(2026, time.July, 1).Time))
	})

	t.Run("scans YYYY-MM-DD string", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2026-07-01"))
		assert.True(t, d.Time.Equal(NewDate(2026, time.July, 1).Time))
	})

	t.Run("scans NULL to the zero date", func(t *testing.T) {
		d := NewDate(2026, time.July, 1)
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("rejects unsupported source types", func(t *testing.T) {
		var d Date
		require.Error(t, d.Scan(42))
	})

	t.Run("value round trip", func(t *testing.T) {
		d := NewDate(2026, time.July, 1)

		v, err := d.Value()
		require.NoError(t, err)

		var scanned Date
		require.NoError(t, scanned.Scan(v))
		assert.True(t, scanned.Time.Equal(d.Time))
	})

	t.Run("zero date values as NULL", func(t *testing.T) {
		v, err := Date{}.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
