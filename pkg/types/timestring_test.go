package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 6, 10, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("17:00")
	require.NoError(t, err)
	assert.Equal(t, "17:00", ts.String())

	for _, bad := range []string{"", "9:00am", "25:00", "10:60", "abc"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input=%q", bad)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(540)
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)
}

func TestMinutes(t *testing.T) {
	minutes, err := TimeString("10:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 615, minutes)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:15", ts.String())

	// Ровно конец суток
	ts, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "24:00", ts.String())

	// За пределы суток
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:30"))
	// Лексикографическое сравнение корректно при ведущих нулях
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestJSONRoundTrip(t *testing.T) {
	ts := TimeString("10:30")
	data, err := ts.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"10:30"`, string(data))

	var parsed TimeString
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, ts, parsed)
}

func TestScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("11:45"))
	assert.Equal(t, "11:45", ts.String())

	require.NoError(t, ts.Scan([]byte("12:00")))
	assert.Equal(t, "12:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2024, 6, 10, 13, 15, 0, 0, time.UTC)))
	assert.Equal(t, "13:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
