package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VenueServices/hall-reservation-api/internal/audit"
	"github.com/VenueServices/hall-reservation-api/internal/cache"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/httpresp"
	"github.com/VenueServices/hall-reservation-api/internal/images"
	"github.com/VenueServices/hall-reservation-api/internal/middleware"
	"github.com/VenueServices/hall-reservation-api/internal/models"
	"github.com/VenueServices/hall-reservation-api/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type HallHandler struct {
	db       *gorm.DB
	cache    *cache.HallCache
	uploader *storage.S3Uploader
	audit    *audit.Dispatcher
}

func NewHallHandler(
	db *gorm.DB,
	hallCache *cache.HallCache,
	uploader *storage.S3Uploader,
	auditDispatcher *audit.Dispatcher,
) *HallHandler {
	return &HallHandler{
		db:       db,
		cache:    hallCache,
		uploader: uploader,
		audit:    auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateHallRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category" binding:"required"`
	Capacity     int     `json:"capacity" binding:"required,gt=0"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
	Location     string  `json:"location" binding:"required"`
}

type UpdateHallRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Capacity     *int     `json:"capacity"`
	PricePerHour *float64 `json:"price_per_hour"`
	Location     *string  `json:"location"`
}

// ======================================================
// PUBLIC READS
// ======================================================

func (h *HallHandler) ListAll(c *gin.Context) {
	var halls []models.Hall
	if err := h.db.Find(&halls).Error; err != nil {
		httperr.Internal(c, "failed_to_list_halls", "Could not list halls.")
		return
	}
	httpresp.List(c, halls)
}

func (h *HallHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var hall models.Hall
	if err := h.db.First(&hall, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeHallNotFound, "Hall not found.")
		return
	}
	httpresp.OK(c, hall)
}

// Search serves filtered hall lists through the redis cache. Filters:
// name substring, exact category, minimum capacity.
func (h *HallHandler) Search(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")

	minCapacity := 0
	if raw := c.Query("min_capacity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			httperr.BadRequest(c, "invalid_min_capacity", "Invalid minimum capacity.")
			return
		}
		minCapacity = v
	}

	ctx := c.Request.Context()

	if halls, ok := h.cache.Get(ctx, search, category, minCapacity); ok {
		httpresp.List(c, halls)
		return
	}

	q := h.db.Model(&models.Hall{})
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if minCapacity > 0 {
		q = q.Where("capacity >= ?", minCapacity)
	}

	var halls []models.Hall
	if err := q.Find(&halls).Error; err != nil {
		httperr.Internal(c, "failed_to_search_halls", "Could not search halls.")
		return
	}

	h.cache.Set(ctx, search, category, minCapacity, halls)
	httpresp.List(c, halls)
}

// ======================================================
// CREATE
// ======================================================

func (h *HallHandler) Create(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	if caller.Role != models.RoleProvider && caller.Role != models.RoleAdmin {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized to create halls.")
		return
	}

	var req CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	hall := models.Hall{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		Location:     req.Location,
		ProviderID:   caller.UserID,
	}

	if err := h.db.Create(&hall).Error; err != nil {
		httperr.Internal(c, "failed_to_create_hall", "Could not create hall.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "hall_created",
		Entity:   "hall",
		EntityID: &hall.ID,
	})

	httpresp.Created(c, hall)
}

// ======================================================
// UPDATE
// ======================================================

func (h *HallHandler) Update(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	id := c.Param("id")

	var hall models.Hall
	if err := h.db.First(&hall, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeHallNotFound, "Hall not found.")
		return
	}

	if caller.Role != models.RoleAdmin && hall.ProviderID != caller.UserID {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized to update this hall.")
		return
	}

	var req UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	// Price and capacity changes never touch existing reservations;
	// total_price is frozen at booking time.
	if req.Name != nil {
		hall.Name = *req.Name
	}
	if req.Description != nil {
		hall.Description = *req.Description
	}
	if req.Category != nil {
		hall.Category = *req.Category
	}
	if req.Capacity != nil {
		hall.Capacity = *req.Capacity
	}
	if req.PricePerHour != nil {
		hall.PricePerHour = *req.PricePerHour
	}
	if req.Location != nil {
		hall.Location = *req.Location
	}

	if err := h.db.Save(&hall).Error; err != nil {
		httperr.Internal(c, "failed_to_update_hall", "Could not update hall.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "hall_updated",
		Entity:   "hall",
		EntityID: &hall.ID,
	})

	httpresp.OK(c, hall)
}

// ======================================================
// DELETE
// ======================================================

func (h *HallHandler) Delete(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	id := c.Param("id")

	var hall models.Hall
	if err := h.db.First(&hall, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeHallNotFound, "Hall not found.")
		return
	}

	if caller.Role != models.RoleAdmin && hall.ProviderID != caller.UserID {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized to delete this hall.")
		return
	}

	if err := h.db.Delete(&hall).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_hall", "Could not delete hall.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "hall_deleted",
		Entity:   "hall",
		EntityID: &hall.ID,
	})

	c.Status(204)
}

// ======================================================
// PHOTO UPLOAD
// ======================================================

func (h *HallHandler) UploadPhoto(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	id := c.Param("id")

	var hall models.Hall
	if err := h.db.First(&hall, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeHallNotFound, "Hall not found.")
		return
	}

	if caller.Role != models.RoleAdmin && hall.ProviderID != caller.UserID {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized to update this hall.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read photo.")
		return
	}
	defer src.Close()

	converted, err := images.ToWebP(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Photo must be a valid jpeg or png.")
		return
	}

	key := fmt.Sprintf("halls/%s.webp", uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, converted, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_photo", "Could not store photo.")
		return
	}

	hall.PhotoURL = url
	if err := h.db.Save(&hall).Error; err != nil {
		httperr.Internal(c, "failed_to_update_hall", "Could not update hall.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	httpresp.OK(c, hall)
}
