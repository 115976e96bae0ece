package repository

import (
	"errors"
	"time"

	"clinic-app-server/internal/models"
)

// Storage-level sentinel errors. The service layer translates these into its
// own domain errors; handlers never see them directly.
var (
	// ErrNotFound is returned when a record does not exist within the
	// requested scope. An ownership miss is indistinguishable from true
	// absence on purpose.
	ErrNotFound = errors.New("record not found")

	// ErrSlotConflict is returned when a non-cancelled appointment already
	// occupies the same (doctor, date, time) slot.
	ErrSlotConflict = errors.New("appointment slot already booked")
)

// AppointmentRepository persists appointments and owns the slot-uniqueness
// invariant: Create checks and inserts inside a single transaction.
type AppointmentRepository interface {
	Create(apt *models.Appointment) error
	FindForPatient(patientID string, id uint) (*models.Appointment, error)
	FindForDoctor(doctorID string, id uint) (*models.Appointment, error)
	ListByPatient(patientID string) ([]models.Appointment, error)
	ListByDoctor(doctorID string) ([]models.Appointment, error)
	CountByPatient(patientID string) (int64, error)
	NextUpcoming(patientID string, from time.Time) (*models.Appointment, error)
	Update(apt *models.Appointment) error
}

// PatientRepository resolves patient profiles.
type PatientRepository interface {
	FindByUserID(userID string) (*models.Patient, error)
}

// DoctorRepository resolves doctor profiles and the public directory.
type DoctorRepository interface {
	FindByUserID(userID string) (*models.Doctor, error)
	FindByID(id string) (*models.Doctor, error)
	ListPublic() ([]models.DoctorPublic, error)
}

// NotificationRepository is the storage side of the notification sink.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(userID, id string) error
}
