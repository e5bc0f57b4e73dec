package appointment

import "github.com/BruksfildServices01/consultant-scheduler/internal/models"

// Appointment is a booking of a customer with a consultant over a Window.
// ID is zero until the appointment has been saved.
type Appointment struct {
	ID          uint
	Title       string
	Description string
	Contact     string
	URL         string
	Type        Type
	Window      Window

	CustomerID   uint
	ConsultantID uint
	CreatedBy    *uint
}

// Model maps the appointment onto its persisted row.
func (a Appointment) Model() *models.Appointment {
	return &models.Appointment{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Contact:     a.Contact,
		URL:         a.URL,
		Type:        string(a.Type),
		Location:    a.Window.ZoneID(),
		StartUTC:    a.Window.UTCStart(),
		EndUTC:      a.Window.UTCEnd(),
		CustomerID:  a.CustomerID,
		UserID:      a.ConsultantID,
		CreatedBy:   a.CreatedBy,
	}
}

// FromModel rebuilds an appointment from a stored row through the
// stored-UTC path of the normalizer.
func FromModel(m models.Appointment, n *TimeNormalizer) (Appointment, error) {
	w, err := n.FromStored(m.StartUTC, m.EndUTC, m.Location)
	if err != nil {
		return Appointment{}, err
	}
	return Appointment{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Contact:      m.Contact,
		URL:          m.URL,
		Type:         Type(m.Type),
		Window:       w,
		CustomerID:   m.CustomerID,
		ConsultantID: m.UserID,
		CreatedBy:    m.CreatedBy,
	}, nil
}
