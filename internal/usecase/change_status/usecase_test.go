package change_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/Clinic-SchedulingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	updates     []domain.AppointmentStatus
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	appt := *f.appointment
	return &appt, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if f.appointment == nil || f.appointment.ID != id {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.appointment.Status = status
	f.updates = append(f.updates, status)
	return nil
}

type fakeCancellationRepo struct {
	upserts []*domain.CancellationLog
}

func (f *fakeCancellationRepo) Upsert(_ context.Context, log *domain.CancellationLog) error {
	f.upserts = append(f.upserts, log)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	repo *fakeAppointmentRepo
	logs *fakeCancellationRepo
	uc   *UseCase
}

func newFixture(status domain.AppointmentStatus) *fixture {
	f := &fixture{
		repo: &fakeAppointmentRepo{
			appointment: &domain.Appointment{
				ID:              42,
				PatientID:       7,
				ProfessionalID:  5,
				StartTime:       time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
				DurationMinutes: 30,
				Status:          status,
			},
		},
		logs: &fakeCancellationRepo{},
	}
	f.uc = NewUseCase(f.repo, f.logs, fakeTxManager{}, nopLogger{})
	return f
}

func TestExecute_ScheduledToCompletedSeen(t *testing.T) {
	f := newFixture(domain.StatusScheduled)

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, Status: "completed_seen"})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Equal(t, "completed_seen", resp.Status)
	assert.True(t, resp.RequiresClinicalNote)
	assert.Equal(t, domain.StatusCompletedSeen, f.repo.appointment.Status)
	assert.Empty(t, f.logs.upserts)
}

func TestExecute_CancelWritesAuditLog(t *testing.T) {
	f := newFixture(domain.StatusScheduled)

	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Status:        "cancelled",
		RequestedBy:   ptr.Ptr("patient"),
		CancelledByID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Equal(t, "cancelled", resp.Status)
	assert.False(t, resp.RequiresClinicalNote)

	require.Len(t, f.logs.upserts, 1)
	log := f.logs.upserts[0]
	assert.Equal(t, int64(42), log.AppointmentID)
	assert.Equal(t, domain.CancelledByPatient, log.RequestedBy)
	require.NotNil(t, log.CancelledByID)
	assert.Equal(t, int64(7), *log.CancelledByID)
	assert.False(t, log.CancelledAt.IsZero())
}

func TestExecute_CancelRequestedByIsCaseInsensitive(t *testing.T) {
	f := newFixture(domain.StatusCheckedIn)

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Status:        "cancelled",
		RequestedBy:   ptr.Ptr("PROFESSIONAL"),
	})
	require.NoError(t, err)

	require.Len(t, f.logs.upserts, 1)
	assert.Equal(t, domain.CancelledByProfessional, f.logs.upserts[0].RequestedBy)
	assert.Nil(t, f.logs.upserts[0].CancelledByID)
}

func TestExecute_CancelWithoutRequestedBy(t *testing.T) {
	f := newFixture(domain.StatusScheduled)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	// Статус не изменён, журнал не тронут
	assert.Equal(t, domain.StatusScheduled, f.repo.appointment.Status)
	assert.Empty(t, f.logs.upserts)
}

func TestExecute_CancelWithBadRequestedBy(t *testing.T) {
	f := newFixture(domain.StatusScheduled)

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Status:        "cancelled",
		RequestedBy:   ptr.Ptr("admin"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CancelWithNonPositiveCancelledByID(t *testing.T) {
	f := newFixture(domain.StatusScheduled)

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Status:        "cancelled",
		RequestedBy:   ptr.Ptr("patient"),
		CancelledByID: ptr.Ptr(int64(0)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CancelledIsTerminal(t *testing.T) {
	for _, target := range []string{"scheduled", "checked_in", "completed_seen", "no_show"} {
		f := newFixture(domain.StatusCancelled)

		_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, Status: target})
		assert.ErrorIs(t, err, ErrCancelledTerminal, "target=%s", target)
		assert.Empty(t, f.repo.updates)
	}
}

func TestExecute_SameStatusIsIdempotentNoOp(t *testing.T) {
	for _, status := range domain.ValidStatuses {
		f := newFixture(status)

		resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, Status: string(status)})
		require.NoError(t, err, "status=%s", status)

		assert.False(t, resp.Changed)
		assert.Equal(t, string(status), resp.Status)
		// no-op никогда не требует записи в медкарте
		assert.False(t, resp.RequiresClinicalNote)
		// Ни записи статуса, ни записи в журнале отмен
		assert.Empty(t, f.repo.updates)
		assert.Empty(t, f.logs.upserts)
	}
}

func TestExecute_CancelledToCancelledKeepsAuditLog(t *testing.T) {
	// Повторная отмена без requestedBy - идемпотентный успех, журнал не перезаписывается
	f := newFixture(domain.StatusCancelled)

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, Status: "cancelled"})
	require.NoError(t, err)

	assert.False(t, resp.Changed)
	assert.Empty(t, f.logs.upserts)
}

func TestExecute_TransitionTable(t *testing.T) {
	tests := []struct {
		from    domain.AppointmentStatus
		to      string
		allowed bool
	}{
		{domain.StatusScheduled, "checked_in", true},
		{domain.StatusScheduled, "completed_seen", true},
		{domain.StatusScheduled, "no_show", true},
		{domain.StatusCheckedIn, "scheduled", true},
		{domain.StatusCheckedIn, "completed_seen", true},
		{domain.StatusCheckedIn, "no_show", true},
		{domain.StatusCompletedSeen, "scheduled", false},
		{domain.StatusCompletedSeen, "checked_in", false},
		{domain.StatusCompletedSeen, "no_show", false},
		{domain.StatusNoShow, "scheduled", false},
		{domain.StatusNoShow, "checked_in", false},
		{domain.StatusNoShow, "completed_seen", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+tt.to, func(t *testing.T) {
			f := newFixture(tt.from)

			resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, Status: tt.to})
			if tt.allowed {
				require.NoError(t, err)
				assert.True(t, resp.Changed)
				assert.Equal(t, tt.to, resp.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestExecute_RequiresClinicalNoteOnlyForCompletedSeen(t *testing.T) {
	for _, target := range []string{"checked_in", "no_show"} {
		f := newFixture(domain.StatusScheduled)

		resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, Status: target})
		require.NoError(t, err)
		assert.False(t, resp.RequiresClinicalNote, "target=%s", target)
	}
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	f := newFixture(domain.StatusScheduled)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 99, Status: "checked_in"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_UnknownStatus(t *testing.T) {
	f := newFixture(domain.StatusScheduled)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 42, Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidAppointmentID(t *testing.T) {
	f := newFixture(domain.StatusScheduled)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 0, Status: "checked_in"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
