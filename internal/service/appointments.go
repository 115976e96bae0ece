package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"clinic-app-server/internal/models"
	"clinic-app-server/internal/notify"
	"clinic-app-server/internal/repository"
)

// AppointmentService is the appointment lifecycle engine. Every operation
// first resolves the caller's account id to a patient or doctor profile, then
// enforces ownership and state-transition rules before touching storage.
// Notification emission is handed to the notifier after the write commits and
// its outcome is ignored.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	notifier     notify.Notifier
	log          zerolog.Logger
}

// NewAppointmentService wires the lifecycle engine.
func NewAppointmentService(
	appointments repository.AppointmentRepository,
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	notifier notify.Notifier,
	log zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
		notifier:     notifier,
		log:          log.With().Str("service", "appointments").Logger(),
	}
}

// CreateAppointmentInput is the validated payload for a booking.
type CreateAppointmentInput struct {
	DoctorID string
	Date     time.Time
	Time     string
	Type     string
	Note     string
}

// StatusUpdateInput is the validated payload for a status change.
type StatusUpdateInput struct {
	Status models.AppointmentStatus
	Reason string
}

// Create books a new appointment for the calling patient. The slot guard is
// enforced by the repository inside the insert transaction; the doctor
// receives a best-effort notification afterwards.
func (s *AppointmentService) Create(userID string, in CreateAppointmentInput) (*models.Appointment, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientProfileNotFound
		}
		return nil, fmt.Errorf("resolving patient profile: %w", err)
	}

	doctor, err := s.doctors.FindByID(in.DoctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("resolving doctor: %w", err)
	}

	apt := &models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: in.Date,
		Time:            in.Time,
		Type:            in.Type,
		Note:            in.Note,
		Status:          models.StatusPending,
	}

	if err := s.appointments.Create(apt); err != nil {
		if errors.Is(err, repository.ErrSlotConflict) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	s.log.Info().Uint("appointment_id", apt.ID).Str("patient_id", patient.ID).Str("doctor_id", doctor.ID).Msg("appointment created")

	s.notifier.Publish(notify.Event{
		UserID:  doctor.UserID,
		Title:   "New Appointment Booked",
		Message: "A patient has booked an appointment with you.",
		Link:    "/doctor/appointments",
	})

	return apt, nil
}

// ListForPatient returns the caller's appointments, most recent date first.
func (s *AppointmentService) ListForPatient(userID string) ([]models.Appointment, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientProfileNotFound
		}
		return nil, fmt.Errorf("resolving patient profile: %w", err)
	}
	appointments, err := s.appointments.ListByPatient(patient.ID)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return appointments, nil
}

// GetForPatient returns one of the caller's appointments. An appointment
// belonging to a different patient reads as not found.
func (s *AppointmentService) GetForPatient(userID string, id uint) (*models.Appointment, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientProfileNotFound
		}
		return nil, fmt.Errorf("resolving patient profile: %w", err)
	}
	apt, err := s.appointments.FindForPatient(patient.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("fetching appointment: %w", err)
	}
	return apt, nil
}

// CountForPatient returns how many appointments the caller has booked.
func (s *AppointmentService) CountForPatient(userID string) (int64, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrPatientProfileNotFound
		}
		return 0, fmt.Errorf("resolving patient profile: %w", err)
	}
	count, err := s.appointments.CountByPatient(patient.ID)
	if err != nil {
		return 0, fmt.Errorf("counting appointments: %w", err)
	}
	return count, nil
}

// NextUpcomingForPatient returns the caller's earliest scheduled appointment
// on or after today, or nil when there is none.
func (s *AppointmentService) NextUpcomingForPatient(userID string) (*models.Appointment, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientProfileNotFound
		}
		return nil, fmt.Errorf("resolving patient profile: %w", err)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	apt, err := s.appointments.NextUpcoming(patient.ID, today)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching upcoming appointment: %w", err)
	}
	return apt, nil
}

// UpdateStatusByPatient is the patient-side transition: cancellation only,
// and only while the appointment is still pending.
func (s *AppointmentService) UpdateStatusByPatient(userID string, id uint, in StatusUpdateInput) (*models.Appointment, error) {
	patient, err := s.patients.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPatientProfileNotFound
		}
		return nil, fmt.Errorf("resolving patient profile: %w", err)
	}

	apt, err := s.appointments.FindForPatient(patient.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("fetching appointment: %w", err)
	}

	if in.Status != models.StatusCancelled || !apt.Status.Cancellable() {
		return nil, ErrInvalidTransition
	}

	apt.Status = models.StatusCancelled
	apt.Reason = in.Reason
	if err := s.appointments.Update(apt); err != nil {
		return nil, fmt.Errorf("cancelling appointment: %w", err)
	}

	s.log.Info().Uint("appointment_id", apt.ID).Str("patient_id", patient.ID).Msg("appointment cancelled by patient")
	return apt, nil
}

// UpdateStatusByDoctor is the doctor-side transition: any of the four
// statuses, restricted to the doctor's own appointments. The patient receives
// a best-effort notification carrying the new status.
func (s *AppointmentService) UpdateStatusByDoctor(userID string, id uint, in StatusUpdateInput) (*models.Appointment, error) {
	doctor, err := s.doctors.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorProfileNotFound
		}
		return nil, fmt.Errorf("resolving doctor profile: %w", err)
	}

	if !in.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	apt, err := s.appointments.FindForDoctor(doctor.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("fetching appointment: %w", err)
	}

	apt.Status = in.Status
	apt.Reason = in.Reason
	if err := s.appointments.Update(apt); err != nil {
		return nil, fmt.Errorf("updating appointment status: %w", err)
	}

	s.log.Info().Uint("appointment_id", apt.ID).Str("doctor_id", doctor.ID).Str("status", string(in.Status)).Msg("appointment status updated by doctor")

	if apt.Patient != nil {
		s.notifier.Publish(notify.Event{
			UserID:  apt.Patient.UserID,
			Title:   "Appointment Status Updated",
			Message: fmt.Sprintf("Your appointment status has been updated to %s.", in.Status),
			Link:    "/patient/appointments",
		})
	}

	return apt, nil
}

// ListForDoctor returns the calling doctor's appointments, most recent date
// first.
func (s *AppointmentService) ListForDoctor(userID string) ([]models.Appointment, error) {
	doctor, err := s.doctors.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorProfileNotFound
		}
		return nil, fmt.Errorf("resolving doctor profile: %w", err)
	}
	appointments, err := s.appointments.ListByDoctor(doctor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return appointments, nil
}

// ListDoctors returns the patient-facing doctor directory.
func (s *AppointmentService) ListDoctors() ([]models.DoctorPublic, error) {
	doctors, err := s.doctors.ListPublic()
	if err != nil {
		return nil, fmt.Errorf("listing doctors: %w", err)
	}
	return doctors, nil
}
