package reservation

import (
	"context"
	"time"

	"github.com/VenueServices/hall-reservation-api/internal/audit"
	domain "github.com/VenueServices/hall-reservation-api/internal/domain/reservation"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

type UpdateReservationStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	caller domain.Caller,
	reservationID uint,
	target domain.Status,
) (*models.Reservation, error) {

	updated, err := uc.repo.Transition(
		ctx,
		reservationID,
		func(res *models.Reservation, hall *models.Hall) error {

			if err := domain.Decide(caller, res, hall, target); err != nil {
				return err
			}

			res.Status = string(target)

			now := time.Now()
			switch target {
			case domain.StatusCancelled:
				res.CancelledAt = &now
			case domain.StatusCompleted:
				if res.CompletedAt == nil {
					res.CompletedAt = &now
				}
			}

			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "reservation_status_changed",
		Entity:   "reservation",
		EntityID: &updated.ID,
		Metadata: map[string]any{"status": string(target)},
	})

	return updated, nil
}
