package reservation

import (
	"context"

	"github.com/VenueServices/hall-reservation-api/internal/models"
)

type Repository interface {
	// -------- Hall --------
	GetHallByID(
		ctx context.Context,
		id uint,
	) (*models.Hall, error)

	// -------- Reservation (create / conflict) --------

	// CreateIfSlotFree is the atomic unit for booking: the overlap
	// check and the insert happen under one transaction serialized per
	// hall, so concurrent requests for the same slot cannot both
	// commit. A losing caller gets the slot_taken business error.
	CreateIfSlotFree(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reservation (state change) --------

	// Transition loads the reservation and its hall under a row lock,
	// lets decide mutate the reservation, and persists it. decide
	// returning an error aborts without writing.
	Transition(
		ctx context.Context,
		reservationID uint,
		decide func(res *models.Reservation, hall *models.Hall) error,
	) (*models.Reservation, error)

	// -------- Listing --------
	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Reservation, error)

	ListByProviderHalls(
		ctx context.Context,
		providerID uint,
	) ([]models.Reservation, error)

	ListAll(
		ctx context.Context,
	) ([]models.Reservation, error)
}
