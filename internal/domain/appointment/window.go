package appointment

import "time"

// Business hours, evaluated in the location zone.
const (
	OpeningHour = 9
	ClosingHour = 17
)

// Window is a validated appointment span seen from the venue's zone, the
// operator's zone and UTC. Only the UTC pair takes part in comparisons.
type Window struct {
	zoneID string

	locationStart time.Time
	locationEnd   time.Time

	viewerStart time.Time
	viewerEnd   time.Time

	utcStart time.Time
	utcEnd   time.Time
}

func newWindow(zoneID string, start, end time.Time, location, viewer *time.Location) Window {
	return Window{
		zoneID:        zoneID,
		locationStart: start.In(location),
		locationEnd:   end.In(location),
		viewerStart:   start.In(viewer),
		viewerEnd:     end.In(viewer),
		utcStart:      start.UTC(),
		utcEnd:        end.UTC(),
	}
}

func (w Window) ZoneID() string           { return w.zoneID }
func (w Window) LocationStart() time.Time { return w.locationStart }
func (w Window) LocationEnd() time.Time   { return w.locationEnd }
func (w Window) ViewerStart() time.Time   { return w.viewerStart }
func (w Window) ViewerEnd() time.Time     { return w.viewerEnd }
func (w Window) UTCStart() time.Time      { return w.utcStart }
func (w Window) UTCEnd() time.Time        { return w.utcEnd }

func (w Window) Duration() time.Duration {
	return w.utcEnd.Sub(w.utcStart)
}

// Overlaps reports whether the two windows share any instant.
func (w Window) Overlaps(other Window) bool {
	return Overlaps(w.utcStart, w.utcEnd, other.utcStart, other.utcEnd)
}

// Overlaps treats both spans as half-open: [aStart, aEnd) and [bStart, bEnd).
// Spans that only touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WithinBusinessHours checks the closed 09:00-17:00 rule on wall-clock
// times in the location zone. An end of exactly 17:00 is allowed.
func WithinBusinessHours(locationStart, locationEnd time.Time) bool {
	if locationStart.Hour() < OpeningHour {
		return false
	}
	endHour := locationEnd.Hour()
	if endHour > ClosingHour {
		return false
	}
	if endHour == ClosingHour && (locationEnd.Minute() > 0 || locationEnd.Second() > 0 || locationEnd.Nanosecond() > 0) {
		return false
	}
	return true
}
