package scheduling

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() ClinicPolicy {
	return DefaultClinicPolicy(-360)
}

// 2026-03-02 is a Monday, 2026-03-07 a Saturday, 2026-03-08 a Sunday.
var (
	monday   = CivilDate{Year: 2026, Month: time.March, Day: 2}
	saturday = CivilDate{Year: 2026, Month: time.March, Day: 7}
	sunday   = CivilDate{Year: 2026, Month: time.March, Day: 8}
)

func TestGenerateSlots_ClosedDayIsEmpty(t *testing.T) {
	for _, duration := range []int{15, 60, 120} {
		assert.Empty(t, GenerateSlots(testPolicy(), sunday, duration))
	}
}

func TestGenerateSlots_WeekdayHourly(t *testing.T) {
	slots := GenerateSlots(testPolicy(), monday, 60)
	// 09:00 .. 15:00; the 15:00 slot ends exactly at the 16:00 close and is
	// therefore included.
	require.Len(t, slots, 7)
	assert.Equal(t, 9*60, slots[0])
	assert.Equal(t, 15*60, slots[6])
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 60, slots[i]-slots[i-1])
	}
}

func TestGenerateSlots_Saturday(t *testing.T) {
	slots := GenerateSlots(testPolicy(), saturday, 60)
	assert.Equal(t, []int{9 * 60, 10 * 60, 11 * 60}, slots)
}

func TestGenerateSlots_WithinOpenHours(t *testing.T) {
	policy := testPolicy()
	for _, duration := range []int{30, 60, 90, 120} {
		hours := policy.HoursFor(monday.Weekday())
		for _, slot := range GenerateSlots(policy, monday, duration) {
			assert.GreaterOrEqual(t, slot, hours.OpenMinute)
			assert.LessOrEqual(t, slot+duration, hours.CloseMinute)
		}
	}
}

func TestGenerateSlots_LongDurationStopsEarly(t *testing.T) {
	// 90-minute service on a 09:00-16:00 day: last start is 14:30... but with
	// hourly granularity the candidates are on the hour, so 14:00 is last
	// (14:00+90 = 15:30 <= 16:00; 15:00+90 = 16:30 > 16:00).
	slots := GenerateSlots(testPolicy(), monday, 90)
	require.NotEmpty(t, slots)
	assert.Equal(t, 14*60, slots[len(slots)-1])
}

func TestGenerateSlots_OverlongDurationIsEmpty(t *testing.T) {
	// A duration longer than the whole day yields no slots, even at values
	// where open+duration would wrap around the integer range.
	for _, duration := range []int{8 * 60, 24 * 60, math.MaxInt - 100, math.MaxInt} {
		assert.Empty(t, GenerateSlots(testPolicy(), monday, duration))
	}
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(testPolicy(), monday, 0))
	assert.Empty(t, GenerateSlots(testPolicy(), monday, -30))
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	a := GenerateSlots(testPolicy(), monday, 60)
	b := GenerateSlots(testPolicy(), monday, 60)
	assert.Equal(t, a, b)
}
