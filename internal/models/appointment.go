package models

import "time"

// Appointment is the persisted row. StartUTC/EndUTC are the canonical
// window; Location is the venue zone the window was entered in.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	Contact     string `gorm:"size:100" json:"contact"`
	URL         string `gorm:"size:255" json:"url"`
	Type        string `gorm:"size:20;not null" json:"type"`
	Location    string `gorm:"size:64;not null" json:"location"`

	StartUTC time.Time `gorm:"index:idx_appointments_user_window,priority:2;not null" json:"start_utc"`
	EndUTC   time.Time `gorm:"index:idx_appointments_user_window,priority:3;not null" json:"end_utc"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID uint `gorm:"index:idx_appointments_user_window,priority:1" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedBy *uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
