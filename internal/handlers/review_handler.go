package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VenueServices/hall-reservation-api/internal/audit"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/httpresp"
	"github.com/VenueServices/hall-reservation-api/internal/middleware"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

type ReviewHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewReviewHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	HallID  uint   `json:"hall_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReviewHandler) Create(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var hall models.Hall
	if err := h.db.First(&hall, req.HallID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeHallNotFound, "Hall not found.")
		return
	}

	var count int64
	h.db.Model(&models.Review{}).
		Where("hall_id = ? AND user_id = ?", req.HallID, caller.UserID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "already_reviewed", "You have already reviewed this hall.")
		return
	}

	review := models.Review{
		HallID:  req.HallID,
		UserID:  caller.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Could not create review.")
		return
	}

	httpresp.Created(c, review)
}

// ======================================================
// LIST (public)
// ======================================================

func (h *ReviewHandler) ListForHall(c *gin.Context) {
	hallID := c.Param("hallID")

	var reviews []models.Review
	if err := h.db.Where("hall_id = ?", hallID).Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReviewHandler) Delete(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	id := c.Param("id")

	var review models.Review
	if err := h.db.First(&review, id).Error; err != nil {
		httperr.NotFound(c, "review_not_found", "Review not found.")
		return
	}

	if review.UserID != caller.UserID && caller.Role != models.RoleAdmin {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized to delete this review.")
		return
	}

	if err := h.db.Delete(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_review", "Could not delete review.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &review.ID,
	})

	c.Status(204)
}
