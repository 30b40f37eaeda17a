package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowedWeekdays_Unrestricted(t *testing.T) {
	aw := AllWeekdays()

	assert.False(t, aw.IsRestricted())
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, aw.Allows(d))
	}
	assert.Nil(t, aw.List())
}

func TestAllowedWeekdays_Restricted(t *testing.T) {
	aw := RestrictedWeekdays(time.Monday, time.Wednesday)

	assert.True(t, aw.IsRestricted())
	assert.True(t, aw.Allows(time.Monday))
	assert.True(t, aw.Allows(time.Wednesday))
	assert.False(t, aw.Allows(time.Sunday))
	assert.False(t, aw.Allows(time.Saturday))
	assert.Equal(t, []int{1, 3}, aw.List())
}

func TestWeekdaysFromList_EmptyMeansUnrestricted(t *testing.T) {
	assert.False(t, WeekdaysFromList(nil).IsRestricted())
	assert.False(t, WeekdaysFromList([]int{}).IsRestricted())
}

func TestWeekdaysFromList_IgnoresOutOfRange(t *testing.T) {
	aw := WeekdaysFromList([]int{-1, 2, 9})

	assert.True(t, aw.IsRestricted())
	assert.Equal(t, []int{2}, aw.List())
}

func TestAppointment_Overlaps(t *testing.T) {
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	appt := &Appointment{
		StartsAt: base,
		EndsAt:   base.Add(time.Hour),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"полное совпадение", base, base.Add(time.Hour), true},
		{"частичное пересечение слева", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"частичное пересечение справа", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"вложенный интервал", base.Add(15 * time.Minute), base.Add(45 * time.Minute), true},
		{"граничащий слева", base.Add(-time.Hour), base, false},
		{"граничащий справа", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"далеко до", base.Add(-3 * time.Hour), base.Add(-2 * time.Hour), false},
		{"далеко после", base.Add(3 * time.Hour), base.Add(4 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.Overlaps(tt.start, tt.end))
		})
	}
}

func TestAppointment_StatusTransitions(t *testing.T) {
	confirmed := &Appointment{Status: StatusConfirmed}
	finalized := &Appointment{Status: StatusFinalized}
	cancelled := &Appointment{Status: StatusCancelled}

	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, confirmed.CanBeFinalized())
	assert.True(t, confirmed.IsActive())

	assert.False(t, finalized.CanBeCancelled())
	assert.False(t, finalized.CanBeFinalized())
	assert.True(t, finalized.IsActive())

	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, cancelled.CanBeFinalized())
	assert.False(t, cancelled.IsActive())
}
