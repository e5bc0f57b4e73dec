// Package timezone resolves IANA zone identifiers and supplies the
// operator's viewing zone.
package timezone

import (
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
)

const DefaultTimezone = "America/Sao_Paulo"

// ErrUnknownZone is the cause returned when an identifier does not resolve.
var ErrUnknownZone = errors.New("unknown time zone")

// Resolver loads zones from the system database, falling back to the copy
// embedded in the binary. Resolved locations are cached.
type Resolver struct {
	cache sync.Map
}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Resolve(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Wrap(ErrUnknownZone, "empty zone id")
	}
	if loc, ok := r.cache.Load(id); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownZone, "resolve %q: %v", id, err)
	}
	// "Local" depends on the host and is not a venue zone.
	if loc == time.Local {
		return nil, errors.Wrapf(ErrUnknownZone, "resolve %q", id)
	}

	r.cache.Store(id, loc)
	return loc, nil
}

func (r *Resolver) IsValid(id string) bool {
	_, err := r.Resolve(id)
	return err == nil
}

// Operator is the viewing zone of the single operator, configured once per
// process.
type Operator struct {
	zone string
}

func NewOperator(zone string) Operator {
	if strings.TrimSpace(zone) == "" {
		zone = DefaultTimezone
	}
	return Operator{zone: zone}
}

func (o Operator) CurrentLocalZone() string {
	return o.zone
}
