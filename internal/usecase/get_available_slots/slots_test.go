package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

var testDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // понедельник

func makeWindow(t *testing.T, start, end string) slotWindow {
	t.Helper()

	wh := &domain.WorkingHours{
		ProfessionalID: 1,
		Weekday:        testDate.Weekday(),
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
	}

	window, err := resolveWindow(wh, testDate)
	require.NoError(t, err)
	return window
}

func makeAppointment(start, end string) *domain.Appointment {
	startTS, _ := types.NewTimeStringFromString(start)
	endTS, _ := types.NewTimeStringFromString(end)
	startsAt, _ := startTS.At(testDate)
	endsAt, _ := endTS.At(testDate)

	return &domain.Appointment{
		ProfessionalID: 1,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		Status:         domain.StatusConfirmed,
	}
}

func slotTimes(slots []domain.AvailableSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

// Давно прошедший момент: фильтр прошлого не влияет на расчёт
var longAgo = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func TestComputeAvailableSlots_EmptyDay(t *testing.T) {
	window := makeWindow(t, "09:00", "12:00")

	slots := computeAvailableSlots(window, 60, nil, longAgo)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotTimes(slots))
}

func TestComputeAvailableSlots_SkipsBookedSlot(t *testing.T) {
	window := makeWindow(t, "09:00", "12:00")
	appointments := []*domain.Appointment{
		makeAppointment("10:00", "11:00"),
	}

	slots := computeAvailableSlots(window, 60, appointments, longAgo)

	assert.Equal(t, []string{"09:00", "11:00"}, slotTimes(slots))
}

func TestComputeAvailableSlots_StepEqualsDuration(t *testing.T) {
	// Шаг курсора равен длительности услуги: 45-минутные слоты не
	// выравниваются по круглым часам
	window := makeWindow(t, "09:00", "12:00")

	slots := computeAvailableSlots(window, 45, nil, longAgo)

	assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, slotTimes(slots))
}

func TestComputeAvailableSlots_SlotEndingAtWindowEndAllowed(t *testing.T) {
	// 11:30 + 30 минут = 12:00 - ровно конец окна, слот допустим
	window := makeWindow(t, "11:00", "12:00")

	slots := computeAvailableSlots(window, 30, nil, longAgo)

	assert.Equal(t, []string{"11:00", "11:30"}, slotTimes(slots))
}

func TestComputeAvailableSlots_NoPartialTailSlot(t *testing.T) {
	// 90-минутное окно вмещает только один 60-минутный слот:
	// укороченный хвост не предлагается
	window := makeWindow(t, "09:00", "10:30")

	slots := computeAvailableSlots(window, 60, nil, longAgo)

	assert.Equal(t, []string{"09:00"}, slotTimes(slots))
}

func TestComputeAvailableSlots_PastSlotsSkippedButWalkContinues(t *testing.T) {
	window := makeWindow(t, "09:00", "12:00")
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	slots := computeAvailableSlots(window, 60, nil, now)

	// 09:00 и 10:00 уже в прошлом, 11:00 ещё доступен
	assert.Equal(t, []string{"11:00"}, slotTimes(slots))
}

func TestComputeAvailableSlots_SlotStartingExactlyNowIsAvailable(t *testing.T) {
	window := makeWindow(t, "09:00", "12:00")
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	slots := computeAvailableSlots(window, 60, nil, now)

	assert.Equal(t, []string{"10:00", "11:00"}, slotTimes(slots))
}

func TestComputeAvailableSlots_CancelledAppointmentDoesNotBlock(t *testing.T) {
	window := makeWindow(t, "09:00", "12:00")
	cancelled := makeAppointment("10:00", "11:00")
	cancelled.Status = domain.StatusCancelled

	slots := computeAvailableSlots(window, 60, []*domain.Appointment{cancelled}, longAgo)

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotTimes(slots))
}

func TestComputeAvailableSlots_AdjacentIntervalsDoNotConflict(t *testing.T) {
	// Запись [10:00, 11:00) не конфликтует со слотами [09:00, 10:00) и [11:00, 12:00)
	window := makeWindow(t, "09:00", "12:00")
	appointments := []*domain.Appointment{
		makeAppointment("10:00", "11:00"),
	}

	slots := computeAvailableSlots(window, 30, appointments, longAgo)

	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slotTimes(slots))
}

func TestComputeAvailableSlots_PartialOverlapConflicts(t *testing.T) {
	// Запись [10:30, 11:30) задевает слоты [10:00, 11:00) и [11:00, 12:00)
	window := makeWindow(t, "09:00", "13:00")
	appointments := []*domain.Appointment{
		makeAppointment("10:30", "11:30"),
	}

	slots := computeAvailableSlots(window, 60, appointments, longAgo)

	assert.Equal(t, []string{"09:00", "12:00"}, slotTimes(slots))
}

func TestComputeAvailableSlots_AppointmentsOutsideDayRechecked(t *testing.T) {
	// Список записей может быть шире запрошенного дня: чужие интервалы
	// всё равно проверяются и не пересекаются со слотами этого дня
	window := makeWindow(t, "09:00", "11:00")
	otherDay := makeAppointment("09:00", "10:00")
	otherDay.StartsAt = otherDay.StartsAt.AddDate(0, 0, 1)
	otherDay.EndsAt = otherDay.EndsAt.AddDate(0, 0, 1)

	slots := computeAvailableSlots(window, 60, []*domain.Appointment{otherDay}, longAgo)

	assert.Equal(t, []string{"09:00", "10:00"}, slotTimes(slots))
}

func TestComputeAvailableSlots_FullyBookedDayIsEmptyNotError(t *testing.T) {
	window := makeWindow(t, "09:00", "11:00")
	appointments := []*domain.Appointment{
		makeAppointment("09:00", "10:00"),
		makeAppointment("10:00", "11:00"),
	}

	slots := computeAvailableSlots(window, 60, appointments, longAgo)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestComputeAvailableSlots_CountNeverExceedsWindowCapacity(t *testing.T) {
	// Верхняя граница: не больше floor(длина окна / длительность) слотов
	cases := []struct {
		start, end string
		duration   int
		maxSlots   int
	}{
		{"09:00", "12:00", 60, 3},
		{"09:00", "12:00", 45, 4},
		{"09:00", "17:00", 30, 16},
		{"10:00", "10:20", 30, 0},
	}

	for _, tc := range cases {
		window := makeWindow(t, tc.start, tc.end)
		slots := computeAvailableSlots(window, tc.duration, nil, longAgo)
		assert.LessOrEqual(t, len(slots), tc.maxSlots,
			"window %s-%s, duration %d", tc.start, tc.end, tc.duration)
	}
}

func TestComputeAvailableSlots_Ascending(t *testing.T) {
	window := makeWindow(t, "08:00", "20:00")
	appointments := []*domain.Appointment{
		makeAppointment("09:00", "10:00"),
		makeAppointment("13:00", "14:30"),
	}

	slots := computeAvailableSlots(window, 30, appointments, longAgo)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].StartTime.IsBefore(slots[i].StartTime),
			"slots must be strictly ascending: %s before %s", slots[i-1].StartTime, slots[i].StartTime)
	}
}

func TestResolveWindow_InvertedWindow(t *testing.T) {
	wh := &domain.WorkingHours{
		StartTime: types.TimeString("18:00"),
		EndTime:   types.TimeString("09:00"),
	}

	_, err := resolveWindow(wh, testDate)

	require.ErrorIs(t, err, ErrScheduleMisconfigured)
}

func TestResolveWindow_ZeroLengthWindow(t *testing.T) {
	wh := &domain.WorkingHours{
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("09:00"),
	}

	_, err := resolveWindow(wh, testDate)

	require.ErrorIs(t, err, ErrScheduleMisconfigured)
}

func TestResolveWindow_UnparseableTime(t *testing.T) {
	wh := &domain.WorkingHours{
		StartTime: types.TimeString("garbage"),
		EndTime:   types.TimeString("18:00"),
	}

	_, err := resolveWindow(wh, testDate)

	require.ErrorIs(t, err, ErrScheduleMisconfigured)
}

func TestDayBounds(t *testing.T) {
	start, end := dayBounds(time.Date(2025, 6, 2, 15, 42, 7, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), end)
}
