package appointment

import (
	"context"

	"github.com/BruksfildServices01/consultant-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/consultant-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/consultant-scheduler/internal/models"
)

// ======================================================
// STATES
// ======================================================

type State string

const (
	StateCollecting    State = "collecting"
	StateValidating    State = "validating"
	StateConflictCheck State = "conflict_check"
	StateConfirming    State = "confirming"
	StateCommitting    State = "committing"
	StateDone          State = "done"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

// ScheduleInput is the raw form data. AppointmentID is set when an existing
// appointment is being edited.
type ScheduleInput struct {
	AppointmentID *uint
	OperatorID    *uint

	Title       string
	Description string
	Contact     string
	URL         string
	Type        string

	StartDate domain.Date
	StartTime string
	EndDate   domain.Date
	EndTime   string
	Location  string

	CustomerID   uint
	ConsultantID uint
}

// ConfirmFunc is asked whether to save despite overlaps. Returning false
// sends the workflow back to collecting.
type ConfirmFunc func(ctx context.Context, conflicts []models.Appointment) (bool, error)

type ScheduleResult struct {
	State         State
	Trail         []State
	AppointmentID uint
	Window        domain.Window
	Conflicts     []models.Appointment
}

func (r *ScheduleResult) enter(s State) {
	r.State = s
	r.Trail = append(r.Trail, s)
}

type Dispatcher interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleAppointment struct {
	repo       domain.Repository
	normalizer *domain.TimeNormalizer
	checker    *domain.ConflictChecker
	audit      Dispatcher
}

func NewScheduleAppointment(
	repo domain.Repository,
	normalizer *domain.TimeNormalizer,
	audit Dispatcher,
) *ScheduleAppointment {
	return &ScheduleAppointment{
		repo:       repo,
		normalizer: normalizer,
		checker:    domain.NewConflictChecker(repo),
		audit:      audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs one pass of the workflow. The result is never nil; when the
// returned error is nil and State is done, AppointmentID holds the saved id.
func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	in ScheduleInput,
	confirm ConfirmFunc,
) (*ScheduleResult, error) {

	res := &ScheduleResult{}
	res.enter(StateCollecting)

	// --------------------------------------------------
	// 1. Validating
	// --------------------------------------------------
	res.enter(StateValidating)

	typ, err := domain.ParseType(in.Type)
	if err != nil {
		return uc.done(res, err)
	}

	window, err := uc.normalizer.FromInput(domain.Input{
		StartDate: in.StartDate,
		StartTime: in.StartTime,
		EndDate:   in.EndDate,
		EndTime:   in.EndTime,
		ZoneID:    in.Location,
	})
	if err != nil {
		return uc.done(res, err)
	}
	res.Window = window

	if err := uc.checkReferences(ctx, in); err != nil {
		return uc.done(res, err)
	}

	// --------------------------------------------------
	// 2. Conflict check
	// --------------------------------------------------
	res.enter(StateConflictCheck)

	conflicts, err := uc.checker.FindOverlaps(ctx, in.ConsultantID, window, in.AppointmentID)
	if err != nil {
		return uc.done(res, err)
	}
	res.Conflicts = conflicts

	// --------------------------------------------------
	// 3. Confirming
	// --------------------------------------------------
	if len(conflicts) > 0 {
		res.enter(StateConfirming)

		proceed := false
		if confirm != nil {
			proceed, err = confirm(ctx, conflicts)
			if err != nil {
				return uc.done(res, err)
			}
		}

		uc.dispatchOverlap(in, conflicts, proceed)

		if !proceed {
			res.enter(StateCollecting)
			return res, domain.Err(domain.CodeOverlapNotConfirmed)
		}
	}

	// --------------------------------------------------
	// 4. Committing
	// --------------------------------------------------
	res.enter(StateCommitting)

	ap := domain.Appointment{
		Title:        in.Title,
		Description:  in.Description,
		Contact:      in.Contact,
		URL:          in.URL,
		Type:         typ,
		Window:       window,
		CustomerID:   in.CustomerID,
		ConsultantID: in.ConsultantID,
		CreatedBy:    in.OperatorID,
	}
	if in.AppointmentID != nil {
		ap.ID = *in.AppointmentID
	}

	id, err := uc.repo.SaveAppointment(ctx, ap.Model())
	if err != nil {
		return uc.done(res, err)
	}
	res.AppointmentID = id

	action := "appointment_created"
	if in.AppointmentID != nil {
		action = "appointment_updated"
	}
	uc.dispatch(audit.Event{
		UserID:   in.OperatorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &id,
	})

	return uc.done(res, nil)
}

func (uc *ScheduleAppointment) done(res *ScheduleResult, err error) (*ScheduleResult, error) {
	res.enter(StateDone)
	return res, err
}

func (uc *ScheduleAppointment) checkReferences(ctx context.Context, in ScheduleInput) error {
	customer, err := uc.repo.GetCustomer(ctx, in.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.Err(domain.CodeCustomerNotFound)
	}

	consultant, err := uc.repo.GetConsultant(ctx, in.ConsultantID)
	if err != nil {
		return err
	}
	if consultant == nil {
		return domain.Err(domain.CodeConsultantNotFound)
	}

	if in.AppointmentID != nil {
		existing, err := uc.repo.GetAppointment(ctx, *in.AppointmentID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.Err(domain.CodeAppointmentNotFound)
		}
	}

	return nil
}

func (uc *ScheduleAppointment) dispatchOverlap(in ScheduleInput, conflicts []models.Appointment, proceed bool) {
	ids := make([]uint, 0, len(conflicts))
	for _, c := range conflicts {
		ids = append(ids, c.ID)
	}

	action := "appointment_overlap_declined"
	if proceed {
		action = "appointment_overlap_confirmed"
	}

	uc.dispatch(audit.Event{
		UserID:   in.OperatorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: in.AppointmentID,
		Metadata: map[string]any{
			"consultant_id": in.ConsultantID,
			"conflicts":     ids,
		},
	})
}

func (uc *ScheduleAppointment) dispatch(ev audit.Event) {
	if uc.audit != nil {
		uc.audit.Dispatch(ev)
	}
}
