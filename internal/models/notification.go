package models

// Notification is an in-app message addressed to an account. Lifecycle
// transitions append these through the async dispatcher; delivery is
// best-effort and never affects the triggering operation.
type Notification struct {
	BaseModel
	UserID  string `gorm:"size:36;index" json:"userId"`
	Title   string `gorm:"size:100" json:"title"`
	Message string `gorm:"size:500" json:"message"`
	Link    string `gorm:"size:255" json:"link,omitempty"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}
