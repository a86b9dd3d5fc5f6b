package reservation

import (
	"context"

	domain "github.com/VenueServices/hall-reservation-api/internal/domain/reservation"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Execute scopes visibility by role: clients see their own bookings,
// providers see bookings on their halls, admins see everything. Any
// other role value sees nothing.
func (uc *ListReservations) Execute(
	ctx context.Context,
	caller domain.Caller,
) ([]models.Reservation, error) {

	switch caller.Role {
	case models.RoleUser:
		return uc.repo.ListByClient(ctx, caller.UserID)
	case models.RoleProvider:
		return uc.repo.ListByProviderHalls(ctx, caller.UserID)
	case models.RoleAdmin:
		return uc.repo.ListAll(ctx)
	}

	return []models.Reservation{}, nil
}
