package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VenueServices/hall-reservation-api/internal/audit"
	domain "github.com/VenueServices/hall-reservation-api/internal/domain/reservation"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 14, hour, min, 0, 0, time.UTC)
}

func testHall() models.Hall {
	return models.Hall{ID: 1, ProviderID: 2, Capacity: 100, PricePerHour: 50.0}
}

func client() domain.Caller {
	return domain.Caller{UserID: 7, Role: models.RoleUser}
}

func newCreateUC(repo domain.Repository) *CreateReservation {
	return NewCreateReservation(repo, audit.NewDispatcher(nil))
}

func TestCreateReservation(t *testing.T) {
	repo := newFakeRepo(testHall())
	uc := newCreateUC(repo)

	res, err := uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID:    1,
		StartTime: at(10, 0),
		EndTime:   at(12, 0),
		Notes:     "Birthday",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), res.Status)
	assert.Equal(t, uint(7), res.ClientID)
	assert.Equal(t, 100.0, res.TotalPrice)
	assert.Equal(t, "Birthday", res.Notes)
	assert.NotZero(t, res.ID)
}

func TestCreateReservationHallMissing(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	_, err := uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID:    99,
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeHallNotFound))
}

func TestCreateReservationEmptyInterval(t *testing.T) {
	uc := newCreateUC(newFakeRepo(testHall()))

	_, err := uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID:    1,
		StartTime: at(12, 0),
		EndTime:   at(10, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInterval))
}

func TestCreateReservationOverlapRejected(t *testing.T) {
	repo := newFakeRepo(testHall())
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID: 1, StartTime: at(10, 0), EndTime: at(12, 0),
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID: 1, StartTime: at(11, 0), EndTime: at(13, 0),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
}

func TestCreateReservationBackToBack(t *testing.T) {
	repo := newFakeRepo(testHall())
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID: 1, StartTime: at(10, 0), EndTime: at(11, 0),
	})
	require.NoError(t, err)

	// one booking ending exactly when the next starts is allowed
	_, err = uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID: 1, StartTime: at(11, 0), EndTime: at(12, 0),
	})
	assert.NoError(t, err)
}

func TestCreateReservationCancelledSlotReusable(t *testing.T) {
	repo := newFakeRepo(testHall())
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID: 1, StartTime: at(10, 0), EndTime: at(12, 0),
	})
	require.NoError(t, err)

	statusUC := NewUpdateReservationStatus(repo, audit.NewDispatcher(nil))
	_, err = statusUC.Execute(context.Background(), client(), first.ID, domain.StatusCancelled)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID: 1, StartTime: at(10, 0), EndTime: at(12, 0),
	})
	assert.NoError(t, err)
}

func TestCreateReservationPriceFrozen(t *testing.T) {
	repo := newFakeRepo(testHall())
	uc := newCreateUC(repo)

	res, err := uc.Execute(context.Background(), client(), CreateReservationInput{
		HallID: 1, StartTime: at(10, 0), EndTime: at(12, 0),
	})
	require.NoError(t, err)
	require.Equal(t, 100.0, res.TotalPrice)

	// raising the hall price later must not touch the stored total
	repo.mu.Lock()
	hall := repo.halls[1]
	hall.PricePerHour = 500.0
	repo.halls[1] = hall
	repo.mu.Unlock()

	listUC := NewListReservations(repo)
	listed, err := listUC.Execute(context.Background(), client())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 100.0, listed[0].TotalPrice)
}

func TestCreateReservationConcurrentDuplicate(t *testing.T) {
	repo := newFakeRepo(testHall())
	uc := newCreateUC(repo)

	in := CreateReservationInput{HallID: 1, StartTime: at(10, 0), EndTime: at(12, 0)}

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), client(), in)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}
