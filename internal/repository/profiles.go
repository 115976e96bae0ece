package repository

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-app-server/internal/models"
)

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a gorm-backed PatientRepository.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) FindByUserID(userID string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Where("user_id = ?", userID).First(&patient).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &patient, nil
}

type doctorRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewDoctorRepository creates a gorm-backed DoctorRepository.
func NewDoctorRepository(db *gorm.DB, log zerolog.Logger) DoctorRepository {
	return &doctorRepository{db: db, log: log.With().Str("repository", "doctors").Logger()}
}

func (r *doctorRepository) FindByUserID(userID string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.Where("id = ?", id).First(&doctor).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &doctor, nil
}

func (r *doctorRepository) ListPublic() ([]models.DoctorPublic, error) {
	var doctors []models.Doctor
	if err := r.db.Find(&doctors).Error; err != nil {
		r.log.Error().Err(err).Msg("failed to list doctors")
		return nil, err
	}
	public := make([]models.DoctorPublic, len(doctors))
	for i, d := range doctors {
		public[i] = d.Public()
	}
	return public, nil
}
