package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VenueServices/hall-reservation-api/internal/httperr"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 14, hour, min, 0, 0, time.UTC)
}

func TestValidateInterval(t *testing.T) {
	assert.NoError(t, ValidateInterval(at(10, 0), at(11, 0)))

	err := ValidateInterval(at(11, 0), at(10, 0))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInterval))

	// empty interval is invalid too
	err = ValidateInterval(at(10, 0), at(10, 0))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInterval))
}

func TestPriceFor(t *testing.T) {
	assert.Equal(t, 100.0, PriceFor(at(10, 0), at(12, 0), 50.0))
	assert.Equal(t, 75.0, PriceFor(at(10, 0), at(11, 30), 50.0))
	assert.Equal(t, 12.5, PriceFor(at(10, 0), at(10, 15), 50.0))
}

func TestOverlaps(t *testing.T) {
	// touching endpoints do not overlap
	assert.False(t, Overlaps(at(10, 0), at(11, 0), at(11, 0), at(12, 0)))
	assert.False(t, Overlaps(at(11, 0), at(12, 0), at(10, 0), at(11, 0)))

	assert.True(t, Overlaps(at(10, 0), at(12, 0), at(11, 0), at(13, 0)))
	assert.True(t, Overlaps(at(10, 0), at(12, 0), at(10, 30), at(11, 30)))
	assert.True(t, Overlaps(at(10, 30), at(11, 30), at(10, 0), at(12, 0)))

	assert.False(t, Overlaps(at(8, 0), at(9, 0), at(9, 30), at(10, 0)))
}
