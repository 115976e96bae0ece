package service

import "errors"

// Domain errors raised by the appointment lifecycle engine. Handlers map
// these onto the HTTP taxonomy; nothing below the handler layer knows about
// status codes.
var (
	// ErrPatientProfileNotFound: the account authenticated but never
	// completed patient registration.
	ErrPatientProfileNotFound = errors.New("patient profile not found")

	// ErrDoctorProfileNotFound: a doctor-role caller with no doctor profile.
	ErrDoctorProfileNotFound = errors.New("doctor profile not found")

	// ErrDoctorNotFound: the doctor targeted by a booking does not exist.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrAppointmentNotFound covers both true absence and ownership-scope
	// misses; the two are deliberately indistinguishable.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrSlotTaken: the (doctor, date, time) slot already holds a
	// non-cancelled appointment.
	ErrSlotTaken = errors.New("this time slot is already booked for the selected doctor")

	// ErrInvalidTransition: the requested status change is not allowed from
	// the appointment's current state.
	ErrInvalidTransition = errors.New("only pending appointments can be cancelled")

	// ErrInvalidStatus: the target status is not one of the enumerated values.
	ErrInvalidStatus = errors.New("invalid appointment status")
)
