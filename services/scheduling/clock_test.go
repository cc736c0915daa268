package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCivilDate(t *testing.T) {
	d, err := ParseCivilDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, monday, d)
	assert.Equal(t, time.Monday, d.Weekday())

	_, err = ParseCivilDate("02/03/2026")
	assert.Error(t, err)
}

func TestCivilDateBefore(t *testing.T) {
	assert.True(t, monday.Before(saturday))
	assert.False(t, saturday.Before(monday))
	assert.False(t, monday.Before(monday))
	assert.True(t, CivilDate{2025, time.December, 31}.Before(CivilDate{2026, time.January, 1}))
}

func TestSlotStartUTC_FixedOffset(t *testing.T) {
	// 09:00 clinic time at UTC-6 is 15:00 UTC, any day of the year.
	policy := testPolicy()
	start := policy.SlotStartUTC(monday, 9*60)
	assert.Equal(t, time.Date(2026, time.March, 2, 15, 0, 0, 0, time.UTC), start)

	july := CivilDate{Year: 2026, Month: time.July, Day: 6}
	assert.Equal(t, time.Date(2026, time.July, 6, 15, 0, 0, 0, time.UTC),
		policy.SlotStartUTC(july, 9*60))
}

func TestClock12Formatting(t *testing.T) {
	assert.Equal(t, "9:00 AM", FormatClock12(9*60))
	assert.Equal(t, "12:00 PM", FormatClock12(12*60))
	assert.Equal(t, "3:00 PM", FormatClock12(15*60))

	m, err := ParseClock12("9:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 9*60, m)

	// The original frontend sends zero-padded hours.
	m, err = ParseClock12("09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 9*60, m)

	m, err = ParseClock12("3:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 15*60, m)

	_, err = ParseClock12("25:00")
	assert.Error(t, err)
}
