package reservation

import (
	"context"
	"sync"

	domain "github.com/VenueServices/hall-reservation-api/internal/domain/reservation"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

// fakeRepo mirrors the gorm repository's contract in memory: the
// overlap check and insert are atomic under one mutex, exactly like
// the advisory-lock transaction in production.
type fakeRepo struct {
	mu           sync.Mutex
	halls        map[uint]models.Hall
	reservations map[uint]models.Reservation
	nextID       uint
}

func newFakeRepo(halls ...models.Hall) *fakeRepo {
	r := &fakeRepo{
		halls:        make(map[uint]models.Hall),
		reservations: make(map[uint]models.Reservation),
	}
	for _, h := range halls {
		r.halls[h.ID] = h
	}
	return r
}

func (r *fakeRepo) GetHallByID(_ context.Context, id uint) (*models.Hall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.halls[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeHallNotFound)
	}
	return &h, nil
}

func (r *fakeRepo) CreateIfSlotFree(_ context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing.HallID != res.HallID {
			continue
		}
		if existing.Status == string(domain.StatusCancelled) {
			continue
		}
		if domain.Overlaps(existing.StartTime, existing.EndTime, res.StartTime, res.EndTime) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	r.nextID++
	res.ID = r.nextID
	r.reservations[res.ID] = *res
	return nil
}

func (r *fakeRepo) Transition(
	_ context.Context,
	reservationID uint,
	decide func(res *models.Reservation, hall *models.Hall) error,
) (*models.Reservation, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.reservations[reservationID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	hall, ok := r.halls[res.HallID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeHallNotFound)
	}

	if err := decide(&res, &hall); err != nil {
		return nil, err
	}

	r.reservations[res.ID] = res
	return &res, nil
}

func (r *fakeRepo) ListByClient(_ context.Context, clientID uint) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Reservation{}
	for _, res := range r.reservations {
		if res.ClientID == clientID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByProviderHalls(_ context.Context, providerID uint) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Reservation{}
	for _, res := range r.reservations {
		if hall, ok := r.halls[res.HallID]; ok && hall.ProviderID == providerID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Reservation{}
	for _, res := range r.reservations {
		out = append(out, res)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
