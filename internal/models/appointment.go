package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// ParseAppointmentStatus converts an untrusted input string into an
// AppointmentStatus. It is the only boundary where raw strings become
// statuses; everything past it works with the closed enum.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending:
		return StatusPending, true
	case StatusScheduled:
		return StatusScheduled, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	default:
		return "", false
	}
}

// Valid reports whether the status is one of the four enumerated values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Cancellable reports whether a patient may still cancel an appointment in
// this status. Only pending appointments can be cancelled.
func (s AppointmentStatus) Cancellable() bool {
	return s == StatusPending
}

// Appointment represents a booked visit between a patient and a doctor.
// A given (doctor, date, time) slot may hold at most one non-cancelled
// appointment; the repository enforces this inside the create transaction.
type Appointment struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	PatientID       string            `gorm:"size:36;index" json:"patientId"`
	DoctorID        string            `gorm:"size:36;index;index:idx_doctor_slot,priority:1" json:"doctorId"`
	AppointmentDate time.Time         `gorm:"index:idx_doctor_slot,priority:2" json:"appointmentDate"`
	Time            string            `gorm:"size:5;index:idx_doctor_slot,priority:3" json:"time"`
	Type            string            `gorm:"size:50" json:"type"`
	Note            string            `gorm:"size:500" json:"note,omitempty"`
	Status          AppointmentStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	Reason          string            `gorm:"size:500" json:"reason,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}
