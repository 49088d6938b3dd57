package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMonday string
		wantSunday string
	}{
		{name: "wednesday", input: "2025-01-15", wantMonday: "2025-01-13", wantSunday: "2025-01-19"},
		{name: "monday is first column", input: "2025-01-13", wantMonday: "2025-01-13", wantSunday: "2025-01-19"},
		{name: "sunday belongs to previous monday", input: "2025-01-19", wantMonday: "2025-01-13", wantSunday: "2025-01-19"},
		{name: "across month boundary", input: "2025-03-01", wantMonday: "2025-02-24", wantSunday: "2025-03-02"},
		{name: "across year boundary", input: "2025-01-01", wantMonday: "2024-12-30", wantSunday: "2025-01-05"},
		{name: "leap day", input: "2024-02-29", wantMonday: "2024-02-26", wantSunday: "2024-03-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := WeekOf(date(t, tt.input))

			assert.Equal(t, tt.wantMonday, week[0].Format("2006-01-02"))
			assert.Equal(t, tt.wantSunday, week[6].Format("2006-01-02"))
			assert.Equal(t, time.Monday, week[0].Weekday())

			for i := 1; i < len(week); i++ {
				assert.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
			}
			in := date(t, tt.input)
			assert.False(t, in.Before(week[0]) || in.After(week[6]), "input falls inside its week")
		})
	}
}

func TestWeekOf_KeepsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ref := time.Date(2025, 1, 15, 14, 30, 0, 0, loc)

	week := WeekOf(ref)

	for _, d := range week {
		assert.Equal(t, 14, d.Hour())
		assert.Equal(t, 30, d.Minute())
		assert.Equal(t, loc, d.Location())
	}
}

func TestTimeLabels(t *testing.T) {
	labels := TimeLabels()

	require.Len(t, labels, 17)
	assert.Equal(t, "07:00", labels[0].String())
	assert.Equal(t, "07:45", labels[1].String())
	assert.Equal(t, "08:30", labels[2].String())
	assert.Equal(t, "19:00", labels[16].String())

	for i := 1; i < len(labels); i++ {
		assert.Equal(t, 45, labels[i].Minutes()-labels[i-1].Minutes())
	}

	labels[0] = types.MustTimeString("06:00")
	assert.Equal(t, "07:00", TimeLabels()[0].String(), "labels must be returned as a copy")
}

func TestIsTimeLabel(t *testing.T) {
	assert.True(t, IsTimeLabel(types.MustTimeString("13:00")))
	assert.False(t, IsTimeLabel(types.MustTimeString("13:15")))
	assert.False(t, IsTimeLabel(types.TimeString{}))
}
