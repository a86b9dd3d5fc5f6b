package reservation

import (
	"time"

	"github.com/VenueServices/hall-reservation-api/internal/httperr"
)

// ValidateInterval enforces a non-empty half-open interval.
func ValidateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return httperr.ErrBusiness(httperr.CodeInvalidInterval)
	}
	return nil
}

// PriceFor computes the total once, at creation time. The stored value
// never changes even if the hall's hourly price does.
func PriceFor(start, end time.Time, pricePerHour float64) float64 {
	hours := end.Sub(start).Hours()
	return hours * pricePerHour
}

// Overlaps is the strict open-interval test: touching endpoints do not
// overlap, so back-to-back bookings are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
