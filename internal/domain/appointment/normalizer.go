package appointment

import (
	"regexp"
	"strconv"
	"time"
)

var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ZoneResolver turns an IANA identifier into a location.
type ZoneResolver interface {
	Resolve(id string) (*time.Location, error)
}

// ViewerZone supplies the operator's local zone identifier.
type ViewerZone interface {
	CurrentLocalZone() string
}

// Input is the raw, human-entered form of a window.
type Input struct {
	StartDate Date
	StartTime string
	EndDate   Date
	EndTime   string
	ZoneID    string
}

// TimeNormalizer builds Windows from raw input or from stored UTC pairs.
type TimeNormalizer struct {
	zones  ZoneResolver
	viewer ViewerZone
}

func NewTimeNormalizer(zones ZoneResolver, viewer ViewerZone) *TimeNormalizer {
	return &TimeNormalizer{zones: zones, viewer: viewer}
}

// FromInput validates and converts operator input. Checks run in a fixed
// order and the first failure is returned.
func (n *TimeNormalizer) FromInput(in Input) (Window, error) {
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return Window{}, Err(CodeMissingDate)
	}
	if !in.StartDate.Valid() || !in.EndDate.Valid() {
		return Window{}, Err(CodeInvalidDate)
	}

	startH, startM, ok := parseTimeOfDay(in.StartTime)
	if !ok {
		return Window{}, Err(CodeInvalidTimeFormat)
	}
	endH, endM, ok := parseTimeOfDay(in.EndTime)
	if !ok {
		return Window{}, Err(CodeInvalidTimeFormat)
	}

	location, viewer, err := n.zonesFor(in.ZoneID)
	if err != nil {
		return Window{}, err
	}

	start := in.StartDate.At(startH, startM, location)
	end := in.EndDate.At(endH, endM, location)

	if end.Before(start) {
		return Window{}, Err(CodeEndBeforeStart)
	}
	if !start.Before(end) {
		return Window{}, Err(CodeStartAfterEnd)
	}

	if !WithinBusinessHours(start, end) {
		return Window{}, Err(CodeOutsideBusinessHours)
	}

	return newWindow(location.String(), start, end, location, viewer), nil
}

// FromStored rehydrates a persisted window. Rows were validated when they
// were written, so only the zone is checked here.
func (n *TimeNormalizer) FromStored(utcStart, utcEnd time.Time, zoneID string) (Window, error) {
	location, viewer, err := n.zonesFor(zoneID)
	if err != nil {
		return Window{}, err
	}
	return newWindow(location.String(), utcStart, utcEnd, location, viewer), nil
}

func (n *TimeNormalizer) zonesFor(zoneID string) (*time.Location, *time.Location, error) {
	location, err := n.zones.Resolve(zoneID)
	if err != nil {
		return nil, nil, Err(CodeUnknownZone)
	}
	viewer, err := n.ViewerLocation()
	if err != nil {
		return nil, nil, err
	}
	return location, viewer, nil
}

func parseTimeOfDay(s string) (hour, minute int, ok bool) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, true
}

// ViewerLocation resolves the operator's current zone.
func (n *TimeNormalizer) ViewerLocation() (*time.Location, error) {
	loc, err := n.zones.Resolve(n.viewer.CurrentLocalZone())
	if err != nil {
		return nil, Err(CodeUnknownZone)
	}
	return loc, nil
}
