package repository

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic-app-server/internal/models"
)

type appointmentRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewAppointmentRepository creates a gorm-backed AppointmentRepository.
func NewAppointmentRepository(db *gorm.DB, log zerolog.Logger) AppointmentRepository {
	return &appointmentRepository{db: db, log: log.With().Str("repository", "appointments").Logger()}
}

// Create inserts the appointment after verifying the slot is free. The check
// and the insert run in one transaction with the conflicting rows locked, so
// two concurrent bookings for the same (doctor, date, time) cannot both pass.
func (r *appointmentRepository) Create(apt *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taken []models.Appointment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND appointment_date = ? AND time = ? AND status <> ?",
				apt.DoctorID, apt.AppointmentDate, apt.Time, models.StatusCancelled).
			Find(&taken).Error
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return ErrSlotConflict
		}
		return tx.Create(apt).Error
	})
}

func (r *appointmentRepository) FindForPatient(patientID string, id uint) (*models.Appointment, error) {
	var apt models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Where("id = ? AND patient_id = ?", id, patientID).
		First(&apt).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &apt, nil
}

func (r *appointmentRepository) FindForDoctor(doctorID string, id uint) (*models.Appointment, error) {
	var apt models.Appointment
	err := r.db.Preload("Patient").
		Where("id = ? AND doctor_id = ?", id, doctorID).
		First(&apt).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &apt, nil
}

func (r *appointmentRepository) ListByPatient(patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("appointment_date desc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByDoctor(doctorID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date desc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByPatient(patientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count, err
}

// NextUpcoming returns the earliest scheduled appointment on or after the
// given day, or ErrNotFound when there is none.
func (r *appointmentRepository) NextUpcoming(patientID string, from time.Time) (*models.Appointment, error) {
	var apt models.Appointment
	err := r.db.Preload("Doctor").
		Where("patient_id = ? AND status = ? AND appointment_date >= ?",
			patientID, models.StatusScheduled, from).
		Order("appointment_date asc").
		First(&apt).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &apt, nil
}

func (r *appointmentRepository) Update(apt *models.Appointment) error {
	if err := r.db.Save(apt).Error; err != nil {
		r.log.Error().Err(err).Uint("appointment_id", apt.ID).Msg("failed to update appointment")
		return err
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
