package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:00", "12:30", "23:59"}
	for _, s := range valid {
		ts, err := NewTimeStringFromString(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, ts.String())
	}

	invalid := []string{"", "9:00:00:00", "25:00", "12:60", "12-30", "noon"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		require.ErrorIs(t, err, ErrInvalidTimeString, s)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"01:00": 60,
		"09:30": 570,
		"23:59": 1439,
	}

	for s, want := range cases {
		got, err := TimeString(s).Minutes()
		require.NoError(t, err)
		assert.Equal(t, want, got, s)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:45"), ts)

	ts, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts, "end of day is representable")

	_, err = TimeString("23:30").AddMinutes(60)
	require.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("18:00").IsAfter(TimeString("09:00")))
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("10:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC), got)

	_, err = TimeString("garbage").At(date)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_At_PreservesLocation(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)

	got, err := TimeString("10:00").At(date)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 10, got.Hour())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres отдает колонку time со значением секунд
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("18:00:00")))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 2, 7, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("garbage").Value()
	require.Error(t, err)
}
