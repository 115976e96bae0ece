package models

// Doctor represents a doctor profile, linked 1:1 to an account.
type Doctor struct {
	BaseModel
	UserID         string `gorm:"size:36;uniqueIndex" json:"userId"`
	Name           string `gorm:"size:100" json:"name"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Img            string `gorm:"size:255" json:"img,omitempty"`

	// Relations
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
}

// DoctorPublic is the patient-facing projection of a doctor.
type DoctorPublic struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Img            string `json:"img,omitempty"`
}

// Public returns the patient-facing projection.
func (d *Doctor) Public() DoctorPublic {
	return DoctorPublic{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Img:            d.Img,
	}
}
