package reservation

import "github.com/VenueServices/hall-reservation-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ParseStatus rejects unknown literals before they reach the engine.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(raw), nil
	default:
		return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transition legality
// ===============================

// CanTransition applies to every caller, after authorization:
//   - a cancelled reservation is frozen
//   - a confirmed reservation cannot go back to pending
//   - a completed reservation accepts only the completed no-op
func CanTransition(from, to Status) error {
	if from == StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	if from == StatusConfirmed && to == StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	if from == StatusCompleted && to != StatusCompleted {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	return nil
}
