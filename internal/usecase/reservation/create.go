package reservation

import (
	"context"
	"time"

	"github.com/VenueServices/hall-reservation-api/internal/audit"
	domain "github.com/VenueServices/hall-reservation-api/internal/domain/reservation"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	HallID    uint
	StartTime time.Time
	EndTime   time.Time
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	caller domain.Caller,
	in CreateReservationInput,
) (*models.Reservation, error) {

	hall, err := uc.repo.GetHallByID(ctx, in.HallID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateInterval(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		HallID:     in.HallID,
		ClientID:   caller.UserID,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Status:     string(domain.InitialStatus()),
		TotalPrice: domain.PriceFor(in.StartTime, in.EndTime, hall.PricePerHour),
		Notes:      in.Notes,
	}

	// Overlap check and insert are one atomic unit inside the repo.
	if err := uc.repo.CreateIfSlotFree(ctx, res); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			uc.audit.Dispatch(audit.Event{
				UserID: &caller.UserID,
				Action: "reservation_conflict",
				Entity: "reservation",
				Metadata: map[string]any{
					"hall_id": in.HallID,
					"start":   in.StartTime,
					"end":     in.EndTime,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
