package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	apptRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/appointment"
	whRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/workinghours"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	out := *appt
	out.ID = 42
	out.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeWorkingHoursRepo struct {
	hours *domain.WorkingHours
	err   error
}

func (f *fakeWorkingHoursRepo) GetByProfessionalAndWeekday(_ context.Context, _ int64, _ time.Weekday) (*domain.WorkingHours, error) {
	return f.hours, f.err
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return f.professional, f.err
}

// passthroughTxManager выполняет fn без транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeInvalidator struct {
	invalidated int
}

func (f *fakeInvalidator) InvalidateDay(_ context.Context, _ int64, _ time.Time) {
	f.invalidated++
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	appointments *fakeAppointmentRepo
	services     *fakeServiceRepo
	workingHours *fakeWorkingHoursRepo
	profs        *fakeProfessionalRepo
	tx           *passthroughTxManager
	cache        *fakeInvalidator
	uc           *UseCase
}

// monday 2025-06-02
var fixtureDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newFixture(now time.Time) *fixture {
	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		services: &fakeServiceRepo{
			service: &domain.Service{
				ID:              10,
				Name:            "Стрижка",
				DurationMinutes: 60,
				Price:           1500,
				AllowedWeekdays: domain.AllWeekdays(),
				Active:          true,
			},
		},
		workingHours: &fakeWorkingHoursRepo{
			hours: &domain.WorkingHours{
				ProfessionalID: 1,
				Weekday:        fixtureDate.Weekday(),
				StartTime:      types.TimeString("09:00"),
				EndTime:        types.TimeString("18:00"),
			},
		},
		profs: &fakeProfessionalRepo{
			professional: &domain.Professional{ID: 1, Name: "Анна", Active: true},
		},
		tx:    &passthroughTxManager{},
		cache: &fakeInvalidator{},
	}

	f.uc = NewUseCase(f.appointments, f.services, f.workingHours, f.profs, f.tx, f.cache, nopLogger{})
	f.uc.timeProvider = &fixedTimeProvider{now: now}
	return f
}

var earlyMorning = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func defaultRequest() *Request {
	return &Request{
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           fixtureDate,
		StartTime:      types.TimeString("10:00"),
		ClientName:     "Мария",
		ClientPhone:    "+79990001122",
	}
}

func dayAppointment(start, end string) *domain.Appointment {
	startTS, _ := types.NewTimeStringFromString(start)
	endTS, _ := types.NewTimeStringFromString(end)
	startsAt, _ := startTS.At(fixtureDate)
	endsAt, _ := endTS.At(fixtureDate)

	return &domain.Appointment{
		ProfessionalID: 1,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		Status:         domain.StatusConfirmed,
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	f := newFixture(earlyMorning)

	resp, err := f.uc.Execute(context.Background(), defaultRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), resp.StartsAt)
	assert.Equal(t, time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC), resp.EndsAt)

	// Денормализация данных услуги на момент создания
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, float64(1500), resp.ServicePrice)

	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestExecute_ConflictingSlotRejected(t *testing.T) {
	f := newFixture(earlyMorning)
	f.appointments.existing = []*domain.Appointment{
		dayAppointment("10:00", "11:00"),
	}

	_, err := f.uc.Execute(context.Background(), defaultRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, f.cache.invalidated)
}

func TestExecute_PartialOverlapRejected(t *testing.T) {
	f := newFixture(earlyMorning)
	f.appointments.existing = []*domain.Appointment{
		dayAppointment("10:30", "11:30"),
	}

	_, err := f.uc.Execute(context.Background(), defaultRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_AdjacentAppointmentAllowed(t *testing.T) {
	// Запись [09:00, 10:00) не мешает слоту [10:00, 11:00)
	f := newFixture(earlyMorning)
	f.appointments.existing = []*domain.Appointment{
		dayAppointment("09:00", "10:00"),
	}

	resp, err := f.uc.Execute(context.Background(), defaultRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_UniqueIndexBackstop(t *testing.T) {
	// Проверка прошла, но вставка уперлась в уникальный индекс:
	// конкурирующая транзакция успела первой
	f := newFixture(earlyMorning)
	f.appointments.createErr = apptRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), defaultRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SlotInPast(t *testing.T) {
	f := newFixture(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))

	_, err := f.uc.Execute(context.Background(), defaultRequest())

	require.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_SlotOutsideWorkingHours(t *testing.T) {
	f := newFixture(earlyMorning)
	req := defaultRequest()
	req.StartTime = types.TimeString("17:30") // 17:30 + 60 минут > 18:00

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrSlotOutsideWorkingHours)
}

func TestExecute_SlotEndingAtWindowEndAllowed(t *testing.T) {
	f := newFixture(earlyMorning)
	req := defaultRequest()
	req.StartTime = types.TimeString("17:00") // 17:00 + 60 минут = 18:00 ровно

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC), resp.EndsAt)
}

func TestExecute_ProfessionalNotWorking(t *testing.T) {
	f := newFixture(earlyMorning)
	f.workingHours.hours = nil
	f.workingHours.err = whRepo.ErrWorkingHoursNotFound

	_, err := f.uc.Execute(context.Background(), defaultRequest())

	require.ErrorIs(t, err, ErrProfessionalNotWorking)
}

func TestExecute_ServiceNotOfferedOnDate(t *testing.T) {
	f := newFixture(earlyMorning)
	f.services.service.AllowedWeekdays = domain.RestrictedWeekdays(time.Saturday, time.Sunday)

	_, err := f.uc.Execute(context.Background(), defaultRequest())

	require.ErrorIs(t, err, ErrServiceNotOfferedOnDate)
}

func TestExecute_InactiveService(t *testing.T) {
	f := newFixture(earlyMorning)
	f.services.service.Active = false

	_, err := f.uc.Execute(context.Background(), defaultRequest())

	require.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture(earlyMorning)

	base := defaultRequest()

	noName := *base
	noName.ClientName = ""

	noPhone := *base
	noPhone.ClientPhone = ""

	cases := []*Request{nil, &noName, &noPhone}
	for _, req := range cases {
		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}
