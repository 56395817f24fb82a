package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/Clinic-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/Clinic-SchedulingService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   *domain.ProfessionalAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, appt := range f.appointments {
		if appt.ID == id {
			return appt, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) GetByPatient(_ context.Context, patientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.PatientID != patientID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = &filter
	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.ProfessionalID == filter.ProfessionalID {
			result = append(result, appt)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleAppointments() []*domain.Appointment {
	return []*domain.Appointment{
		{
			ID:              1,
			PatientID:       7,
			ProfessionalID:  5,
			StartTime:       time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
			Reason:          "Consulta general",
		},
		{
			ID:              2,
			PatientID:       7,
			ProfessionalID:  5,
			StartTime:       time.Date(2024, 6, 11, 11, 0, 0, 0, time.UTC),
			DurationMinutes: 45,
			Status:          domain.StatusCancelled,
			Reason:          "Control",
		},
		{
			ID:              3,
			PatientID:       8,
			ProfessionalID:  6,
			StartTime:       time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC),
			DurationMinutes: 15,
			Status:          domain.StatusCompletedSeen,
			Reason:          "Vacunación",
		},
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{appointments: sampleAppointments()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "2024-06-10T10:00:00Z", resp.StartTime)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPatientAppointments(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{appointments: sampleAppointments()}, nopLogger{})

	resp, err := svc.GetPatientAppointments(context.Background(), &models.GetPatientAppointmentsRequest{PatientID: 7})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
}

func TestGetPatientAppointments_StatusFilter(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{appointments: sampleAppointments()}, nopLogger{})

	resp, err := svc.GetPatientAppointments(context.Background(), &models.GetPatientAppointmentsRequest{
		PatientID: 7,
		Status:    ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(2), resp.Appointments[0].ID)
}

func TestGetPatientAppointments_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})

	_, err := svc.GetPatientAppointments(context.Background(), &models.GetPatientAppointmentsRequest{
		PatientID: 7,
		Status:    ptr.Ptr("done"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetProfessionalAppointments(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: sampleAppointments()}
	svc := NewService(repo, nopLogger{})

	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
		ProfessionalID:  5,
		From:            &from,
		To:              &to,
		Status:          ptr.Ptr("scheduled"),
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)

	// Фильтр передан в репозиторий без искажений
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, int64(5), repo.lastFilter.ProfessionalID)
	assert.Equal(t, from, *repo.lastFilter.RangeStart)
	assert.Equal(t, to, *repo.lastFilter.RangeEnd)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusScheduled, *repo.lastFilter.Status)
	assert.True(t, repo.lastFilter.IncludeInactive)
}

func TestGetProfessionalAppointments_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})

	from := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
		ProfessionalID: 5,
		From:           &from,
		To:             &to,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetProfessionalAppointments_RepositoryError(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{ProfessionalID: 5})
	assert.ErrorIs(t, err, ErrInternal)
}
