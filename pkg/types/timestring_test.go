package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  int
	}{
		{"midnight", "00:00", 0},
		{"morning", "09:00", 540},
		{"with minutes", "14:37", 877},
		{"postgres time", "17:30:00", 1050},
		{"end of day", "24:00", 1440},
		{"empty", "", 0},
		{"garbage", "nine", 0},
		{"minutes out of range", "10:75", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeToMinutes(tt.clock))
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "16:30", MinutesToTime(990))
	assert.Equal(t, "24:00", MinutesToTime(1440))
	assert.Equal(t, "00:00", MinutesToTime(-15))
}

func TestTimeString_RoundTrip(t *testing.T) {
	for m := 0; m <= MinutesPerDay; m += 7 {
		assert.Equal(t, m, TimeToMinutes(MinutesToTime(m)))
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:5")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("24:30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutesAndCompare(t *testing.T) {
	start := TimeString("10:00")

	end, err := start.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), end)
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.False(t, start.IsBefore(start))

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 13, 40, 12, 0, time.UTC)))
	assert.Equal(t, TimeString("13:40"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}
