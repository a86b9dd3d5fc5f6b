package reservation

import (
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

// Caller is the authenticated identity attached to every request.
type Caller struct {
	UserID uint
	Role   models.Role
}

type Decision int

const (
	Forbidden Decision = iota
	Allowed
)

// AuthorizeTransition yields a single explicit decision, evaluated
// before transition legality. Admins and the hall's provider may
// request any transition; the client who owns the reservation may only
// cancel, and not a reservation that is already cancelled.
func AuthorizeTransition(
	caller Caller,
	res *models.Reservation,
	hall *models.Hall,
	target Status,
) Decision {

	switch caller.Role {
	case models.RoleAdmin:
		return Allowed

	case models.RoleProvider:
		if hall.ProviderID == caller.UserID {
			return Allowed
		}
		return Forbidden

	case models.RoleUser:
		if res.ClientID != caller.UserID {
			return Forbidden
		}
		if target != StatusCancelled {
			return Forbidden
		}
		if Status(res.Status) == StatusCancelled {
			return Forbidden
		}
		return Allowed
	}

	return Forbidden
}

// Decide is the complete decision for UpdateStatus: authorization has
// precedence over legality, so an unauthorized caller never learns
// whether the transition itself would have been legal.
func Decide(
	caller Caller,
	res *models.Reservation,
	hall *models.Hall,
	target Status,
) error {

	if AuthorizeTransition(caller, res, hall, target) != Allowed {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return CanTransition(Status(res.Status), target)
}
