package appointment

import "time"

type AvailabilityInput struct {
	ConsultantID uint
	Date         Date
	ZoneID       string
	Duration     time.Duration
}

type TimeSlot struct {
	Start    string    `json:"start"`
	End      string    `json:"end"`
	StartUTC time.Time `json:"start_utc"`
	EndUTC   time.Time `json:"end_utc"`
}
