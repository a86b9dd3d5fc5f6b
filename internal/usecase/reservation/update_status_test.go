package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VenueServices/hall-reservation-api/internal/audit"
	domain "github.com/VenueServices/hall-reservation-api/internal/domain/reservation"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

func provider() domain.Caller {
	return domain.Caller{UserID: 2, Role: models.RoleProvider}
}

func admin() domain.Caller {
	return domain.Caller{UserID: 3, Role: models.RoleAdmin}
}

func seedReservation(t *testing.T, repo *fakeRepo, status domain.Status) uint {
	t.Helper()

	res := &models.Reservation{
		HallID:    1,
		ClientID:  client().UserID,
		StartTime: at(10, 0),
		EndTime:   at(12, 0),
		Status:    string(status),
	}
	require.NoError(t, repo.CreateIfSlotFree(context.Background(), res))
	return res.ID
}

func newStatusUC(repo domain.Repository) *UpdateReservationStatus {
	return NewUpdateReservationStatus(repo, audit.NewDispatcher(nil))
}

func TestUpdateStatusProviderConfirms(t *testing.T) {
	repo := newFakeRepo(testHall())
	id := seedReservation(t, repo, domain.StatusPending)
	uc := newStatusUC(repo)

	res, err := uc.Execute(context.Background(), provider(), id, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), res.Status)
}

func TestUpdateStatusClientCancelsOwn(t *testing.T) {
	repo := newFakeRepo(testHall())
	id := seedReservation(t, repo, domain.StatusPending)
	uc := newStatusUC(repo)

	res, err := uc.Execute(context.Background(), client(), id, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), res.Status)
	assert.NotNil(t, res.CancelledAt)
}

func TestUpdateStatusClientCannotConfirm(t *testing.T) {
	repo := newFakeRepo(testHall())
	id := seedReservation(t, repo, domain.StatusPending)
	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), client(), id, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestUpdateStatusForeignProviderForbidden(t *testing.T) {
	repo := newFakeRepo(testHall())
	id := seedReservation(t, repo, domain.StatusPending)
	uc := newStatusUC(repo)

	other := domain.Caller{UserID: 42, Role: models.RoleProvider}
	_, err := uc.Execute(context.Background(), other, id, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestUpdateStatusForeignClientForbidden(t *testing.T) {
	repo := newFakeRepo(testHall())
	id := seedReservation(t, repo, domain.StatusPending)
	uc := newStatusUC(repo)

	other := domain.Caller{UserID: 42, Role: models.RoleUser}
	_, err := uc.Execute(context.Background(), other, id, domain.StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestUpdateStatusCancelledIsFrozen(t *testing.T) {
	repo := newFakeRepo(testHall())
	id := seedReservation(t, repo, domain.StatusCancelled)
	uc := newStatusUC(repo)

	for _, target := range []domain.Status{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		_, err := uc.Execute(context.Background(), admin(), id, target)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition), "target %s", target)
	}

	// the owning client gets forbidden before legality is consulted
	_, err := uc.Execute(context.Background(), client(), id, domain.StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestUpdateStatusNoConfirmedRevert(t *testing.T) {
	repo := newFakeRepo(testHall())
	id := seedReservation(t, repo, domain.StatusConfirmed)
	uc := newStatusUC(repo)

	// forbidden for every role, including the hall's own provider
	for _, caller := range []domain.Caller{admin(), provider()} {
		_, err := uc.Execute(context.Background(), caller, id, domain.StatusPending)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	}
}

func TestUpdateStatusCompletedNoOp(t *testing.T) {
	repo := newFakeRepo(testHall())
	id := seedReservation(t, repo, domain.StatusCompleted)
	uc := newStatusUC(repo)

	res, err := uc.Execute(context.Background(), admin(), id, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), res.Status)

	_, err = uc.Execute(context.Background(), admin(), id, domain.StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestUpdateStatusMissingReservation(t *testing.T) {
	repo := newFakeRepo(testHall())
	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), admin(), 999, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
}
