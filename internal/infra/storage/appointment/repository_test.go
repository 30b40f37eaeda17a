package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ProfessionalID: 1,
		ServiceID:      10,
		StartsAt:       time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		Status:         domain.StatusConfirmed,
		ClientName:     "Мария",
		ClientPhone:    "+79990001122",
		ServiceName:    "Стрижка",
		ServicePrice:   1500,
	}
}

func appointmentRow(appt *domain.Appointment) *sqlmock.Rows {
	return sqlmock.NewRows(appointmentColumns).AddRow(
		int64(42),
		appt.ProfessionalID,
		appt.ServiceID,
		appt.StartsAt,
		appt.EndsAt,
		string(appt.Status),
		appt.ClientName,
		appt.ClientPhone,
		appt.ServiceName,
		appt.ServicePrice,
		nil, // notes
		nil, // cancellation_reason
		nil, // cancelled_at
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	)
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	appt := sampleAppointment()

	mock.ExpectQuery(`INSERT INTO appointments`).
		WithArgs(
			appt.ProfessionalID,
			appt.ServiceID,
			appt.StartsAt,
			appt.EndsAt,
			string(appt.Status),
			appt.ClientName,
			appt.ClientPhone,
			appt.ServiceName,
			appt.ServicePrice,
			nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))

	created, err := repo.Create(context.Background(), appt)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationIsSlotTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO appointments`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_appointments_professional_slot"})

	_, err := repo.Create(context.Background(), sampleAppointment())

	require.ErrorIs(t, err, ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err := repo.GetByID(context.Background(), 99)

	require.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByProfessionalWithFilter_DayQuery(t *testing.T) {
	repo, mock := newMock(t)
	appt := sampleAppointment()

	dayStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Полуоткрытый интервал по starts_at, отменённые исключены, сортировка по возрастанию
	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE professional_id = \$1 AND starts_at >= \$2 AND starts_at < \$3 AND status <> \$4 ORDER BY starts_at ASC`).
		WithArgs(int64(1), dayStart, dayEnd, string(domain.StatusCancelled)).
		WillReturnRows(appointmentRow(appt))

	got, err := repo.GetByProfessionalWithFilter(context.Background(), domain.ProfessionalAppointmentsFilter{
		ProfessionalID: 1,
		StartDate:      &dayStart,
		EndDate:        &dayEnd,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(42), got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByProfessionalWithFilter_StatusFilter(t *testing.T) {
	repo, mock := newMock(t)

	status := domain.StatusFinalized
	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE professional_id = \$1 AND status = \$2 ORDER BY starts_at ASC`).
		WithArgs(int64(1), string(status)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	got, err := repo.GetByProfessionalWithFilter(context.Background(), domain.ProfessionalAppointmentsFilter{
		ProfessionalID: 1,
		Status:         &status,
	})

	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByClientPhone_OrdersDescending(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE client_phone = \$1 ORDER BY starts_at DESC`).
		WithArgs("+79990001122").
		WillReturnRows(appointmentRow(sampleAppointment()))

	got, err := repo.GetByClientPhone(context.Background(), "+79990001122")

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	repo, mock := newMock(t)
	reason := "клиент попросил перенести"
	cancelledAt := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	cancelled := sampleAppointment()
	cancelled.Status = domain.StatusCancelled

	mock.ExpectQuery(`UPDATE appointments SET status = \$1, cancellation_reason = \$2, cancelled_at = \$3, updated_at = NOW\(\) WHERE id = \$4 AND status = \$5 RETURNING`).
		WithArgs(string(domain.StatusCancelled), &reason, cancelledAt, int64(42), string(domain.StatusConfirmed)).
		WillReturnRows(appointmentRow(cancelled))

	got, err := repo.Cancel(context.Background(), 42, &reason, cancelledAt)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo, mock := newMock(t)
	cancelledAt := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	// UPDATE не нашёл подтверждённой записи, но сама запись существует
	mock.ExpectQuery(`UPDATE appointments SET`).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	already := sampleAppointment()
	already.Status = domain.StatusCancelled
	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(appointmentRow(already))

	_, err := repo.Cancel(context.Background(), 42, nil, cancelledAt)

	require.ErrorIs(t, err, ErrCannotCancel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	cancelledAt := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE appointments SET`).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err := repo.Cancel(context.Background(), 99, nil, cancelledAt)

	require.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalize(t *testing.T) {
	repo, mock := newMock(t)

	finalized := sampleAppointment()
	finalized.Status = domain.StatusFinalized

	mock.ExpectQuery(`UPDATE appointments SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3 RETURNING`).
		WithArgs(string(domain.StatusFinalized), int64(42), string(domain.StatusConfirmed)).
		WillReturnRows(appointmentRow(finalized))

	got, err := repo.Finalize(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusFinalized, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
