package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VenueServices/hall-reservation-api/internal/domain/reservation"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

// Classifies our advisory locks so they cannot collide with other
// pg_advisory users on the same database.
const reservationLockClass = 7201

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Hall
// --------------------------------------------------

func (r *ReservationGormRepository) GetHallByID(
	ctx context.Context,
	id uint,
) (*models.Hall, error) {

	var hall models.Hall
	if err := r.db.WithContext(ctx).First(&hall, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeHallNotFound)
		}
		return nil, err
	}
	return &hall, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateIfSlotFree(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serializes concurrent booking attempts for the same hall.
		// Row locks alone cannot stop two inserts that each see zero
		// conflicting rows.
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			reservationLockClass, int32(res.HallID),
		).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.
			Model(&models.Reservation{}).
			Where(
				"hall_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
				res.HallID,
				string(domain.StatusCancelled),
				res.EndTime,
				res.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.Create(res).Error
	})
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *ReservationGormRepository) Transition(
	ctx context.Context,
	reservationID uint,
	decide func(res *models.Reservation, hall *models.Hall) error,
) (*models.Reservation, error) {

	var updated models.Reservation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var res models.Reservation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeReservationNotFound)
			}
			return err
		}

		var hall models.Hall
		if err := tx.First(&hall, res.HallID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeHallNotFound)
			}
			return err
		}

		if err := decide(&res, &hall); err != nil {
			return err
		}

		if err := tx.Save(&res).Error; err != nil {
			return err
		}

		updated = res
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ReservationGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListByProviderHalls(
	ctx context.Context,
	providerID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Joins("JOIN halls ON halls.id = reservations.hall_id").
		Where("halls.provider_id = ?", providerID).
		Order("reservations.start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListAll(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
