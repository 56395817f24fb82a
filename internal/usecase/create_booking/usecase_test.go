package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/Clinic-SchedulingService/internal/infra/storage/appointment"
	patientClient "github.com/m04kA/Clinic-SchedulingService/internal/integrations/patientservice"
	professionalClient "github.com/m04kA/Clinic-SchedulingService/internal/integrations/professionalservice"
)

type fakeAppointmentRepo struct {
	occupied  []*domain.Appointment
	createErr error
	created   *domain.Appointment
	nextID    int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *appointment
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalInRange(_ context.Context, _ int64, _, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	return f.occupied, nil
}

type fakePatientClient struct {
	err error
}

func (f *fakePatientClient) GetPatient(_ context.Context, patientID int64) (*patientClient.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &patientClient.Patient{ID: patientID, FirstName: "Ana", LastName: "Torres"}, nil
}

type fakeProfessionalClient struct {
	err error
}

func (f *fakeProfessionalClient) GetProfessional(_ context.Context, professionalID int64) (*professionalClient.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &professionalClient.Professional{ID: professionalID, FirstName: "Luis", LastName: "Gomez", Active: true}, nil
}

type fakeClinicalClient struct {
	err   error
	calls int
	note  string
}

func (f *fakeClinicalClient) AppendEntry(_ context.Context, _, _ int64, note string) error {
	f.calls++
	f.note = note
	if f.err != nil {
		return f.err
	}
	return nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	repo     *fakeAppointmentRepo
	patients *fakePatientClient
	profs    *fakeProfessionalClient
	clinical *fakeClinicalClient
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &fakeAppointmentRepo{},
		patients: &fakePatientClient{},
		profs:    &fakeProfessionalClient{},
		clinical: &fakeClinicalClient{},
	}
	f.uc = NewUseCase(f.repo, f.patients, f.profs, f.clinical, fakeTxManager{}, nopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{
		PatientID:       7,
		ProfessionalID:  5,
		StartTime:       time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Reason:          "Consulta general",
		Detail:          "Dolor de cabeza persistente",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(7), resp.PatientID)
	assert.Equal(t, int64(5), resp.ProfessionalID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, 30, resp.DurationMinutes)
	// Строка аудита дописана к описанию
	assert.True(t, strings.HasPrefix(resp.Detail, "Dolor de cabeza persistente"))
	assert.Contains(t, resp.Detail, "[booked at ")

	// Запись в медкарту сделана один раз и упоминает пациента
	assert.Equal(t, 1, f.clinical.calls)
	assert.Contains(t, f.clinical.note, "Ana Torres")
}

func TestExecute_DefaultDurationAndStatus(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.DurationMinutes = 0
	req.Status = nil

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
}

func TestExecute_ExplicitInitialStatus(t *testing.T) {
	f := newFixture()
	req := validRequest()
	status := "checked_in"
	req.Status = &status

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "checked_in", resp.Status)
}

func TestExecute_PatientNotFound(t *testing.T) {
	f := newFixture()
	f.patients.err = patientClient.ErrPatientNotFound
	// Слот при этом занят: отсутствие пациента должно сообщаться раньше конфликта
	f.repo.occupied = []*domain.Appointment{
		{ProfessionalID: 5, StartTime: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Zero(t, f.clinical.calls)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	f := newFixture()
	f.profs.err = professionalClient.ErrProfessionalNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ScheduleConflict(t *testing.T) {
	f := newFixture()
	f.repo.occupied = []*domain.Appointment{
		{ProfessionalID: 5, StartTime: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleConflict)
	assert.Nil(t, f.repo.created)
	assert.Zero(t, f.clinical.calls)
}

func TestExecute_PartialOverlapConflict(t *testing.T) {
	f := newFixture()
	// Существующий приём 09:45-10:45 пересекает запрошенный 10:00-10:30
	f.repo.occupied = []*domain.Appointment{
		{ProfessionalID: 5, StartTime: time.Date(2024, 6, 10, 9, 45, 0, 0, time.UTC), DurationMinutes: 60, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestExecute_TouchingIntervalsDoNotConflict(t *testing.T) {
	f := newFixture()
	// Приём 09:30-10:00 заканчивается ровно в момент начала запрошенного
	f.repo.occupied = []*domain.Appointment{
		{ProfessionalID: 5, StartTime: time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC), DurationMinutes: 30, Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentDoesNotConflict(t *testing.T) {
	f := newFixture()
	f.repo.occupied = []*domain.Appointment{
		{ProfessionalID: 5, StartTime: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), DurationMinutes: 30, Status: domain.StatusCancelled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UniqueViolationMapsToConflict(t *testing.T) {
	f := newFixture()
	f.repo.createErr = appointmentRepo.ErrTimeSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleConflict)
}

func TestExecute_ClinicalRecordFailureRollsBack(t *testing.T) {
	f := newFixture()
	f.clinical.err = errors.New("clinical records unavailable")

	_, err := f.uc.Execute(context.Background(), validRequest())
	// Ошибка из транзакционной функции прерывает транзакцию целиком
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	badStatus := "done"
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero patient", func(r *Request) { r.PatientID = 0 }},
		{"negative professional", func(r *Request) { r.ProfessionalID = -1 }},
		{"zero start time", func(r *Request) { r.StartTime = time.Time{} }},
		{"bad duration", func(r *Request) { r.DurationMinutes = 25 }},
		{"empty reason", func(r *Request) { r.Reason = "   " }},
		{"empty detail", func(r *Request) { r.Detail = "" }},
		{"unknown status", func(r *Request) { r.Status = &badStatus }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
