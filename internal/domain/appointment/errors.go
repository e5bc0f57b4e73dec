package appointment

import "github.com/BruksfildServices01/consultant-scheduler/internal/httperr"

// Error codes reported by the scheduling core.
const (
	CodeMissingDate          = "missing_date"
	CodeInvalidDate          = "invalid_date"
	CodeInvalidTimeFormat    = "invalid_time_format"
	CodeEndBeforeStart       = "end_before_start"
	CodeStartAfterEnd        = "start_after_end"
	CodeOutsideBusinessHours = "outside_business_hours"
	CodeUnknownZone          = "unknown_zone"
	CodeInvalidType          = "invalid_type"

	CodeCustomerNotFound    = "customer_not_found"
	CodeConsultantNotFound  = "consultant_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeOverlapNotConfirmed = "overlap_not_confirmed"
)

var messages = map[string]string{
	CodeMissingDate:          "Both a start date and an end date are required.",
	CodeInvalidDate:          "Dates must be real calendar days in the YYYY-MM-DD format.",
	CodeInvalidTimeFormat:    "Times must use the 24-hour HH:MM format.",
	CodeEndBeforeStart:       "The appointment cannot end before it starts.",
	CodeStartAfterEnd:        "The appointment must start before it ends.",
	CodeOutsideBusinessHours: "Appointments must fall between 09:00 and 17:00 at the location.",
	CodeUnknownZone:          "The time zone is not recognized.",
	CodeInvalidType:          "Appointment type must be Support or Sales.",
	CodeCustomerNotFound:     "Customer not found.",
	CodeConsultantNotFound:   "Consultant not found.",
	CodeAppointmentNotFound:  "Appointment not found.",
	CodeOverlapNotConfirmed:  "The appointment overlaps existing appointments and was not confirmed.",
}

// Err returns the classified error for one of the codes above.
func Err(code string) error {
	return httperr.NewBusiness(code, messages[code])
}
