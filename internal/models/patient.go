package models

// Patient represents a patient profile, linked 1:1 to an account.
// A PATIENT-role account without a Patient row has authenticated but never
// completed profile registration.
type Patient struct {
	BaseModel
	UserID    string `gorm:"size:36;uniqueIndex" json:"userId"`
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Phone     string `gorm:"size:30" json:"phone,omitempty"`

	// Relations
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}
