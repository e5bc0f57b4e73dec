package dto

import "time"

// AppointmentListDTO shows one appointment in all three time frames.
type AppointmentListDTO struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	CustomerID   uint   `json:"customer_id"`
	CustomerName string `json:"customer_name"`

	LocationStart time.Time `json:"location_start"`
	LocationEnd   time.Time `json:"location_end"`
	ViewerStart   time.Time `json:"viewer_start"`
	ViewerEnd     time.Time `json:"viewer_end"`
	StartUTC      time.Time `json:"start_utc"`
	EndUTC        time.Time `json:"end_utc"`
}

// ConflictDTO is what the operator sees when asked to confirm an overlap.
type ConflictDTO struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	StartUTC time.Time `json:"start_utc"`
	EndUTC   time.Time `json:"end_utc"`
}
