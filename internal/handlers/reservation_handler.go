package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/VenueServices/hall-reservation-api/internal/domain/reservation"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/httpresp"
	"github.com/VenueServices/hall-reservation-api/internal/middleware"
	ucReservation "github.com/VenueServices/hall-reservation-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC *ucReservation.CreateReservation
	listUC   *ucReservation.ListReservations
	statusUC *ucReservation.UpdateReservationStatus
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	listUC *ucReservation.ListReservations,
	statusUC *ucReservation.UpdateReservationStatus,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		listUC:   listUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	HallID    uint      `json:"hall_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), caller, ucReservation.CreateReservationInput{
		HallID:    req.HallID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	reservations, err := h.listUC.Execute(c.Request.Context(), caller)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Could not list reservations.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_reservation_id", "Invalid reservation id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	// Unknown literals never reach the engine.
	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidStatus, "Unknown reservation status.")
		return
	}

	res, err := h.statusUC.Execute(c.Request.Context(), caller, uint(id), target)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeReservationError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch code {
	case httperr.CodeHallNotFound:
		httperr.NotFound(c, code, "Hall not found.")
	case httperr.CodeReservationNotFound:
		httperr.NotFound(c, code, "Reservation not found.")
	case httperr.CodeInvalidInterval:
		httperr.BadRequest(c, code, "Start time must be before end time.")
	case httperr.CodeInvalidStatus:
		httperr.BadRequest(c, code, "Unknown reservation status.")
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, code, "The requested time slot is already reserved.")
	case httperr.CodeForbidden:
		httperr.Forbidden(c, code, "Not authorized for this reservation.")
	case httperr.CodeInvalidTransition:
		httperr.BadRequest(c, code, "Status transition not allowed.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
