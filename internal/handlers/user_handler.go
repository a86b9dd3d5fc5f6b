package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VenueServices/hall-reservation-api/internal/audit"
	"github.com/VenueServices/hall-reservation-api/internal/httperr"
	"github.com/VenueServices/hall-reservation-api/internal/httpresp"
	"github.com/VenueServices/hall-reservation-api/internal/middleware"
	"github.com/VenueServices/hall-reservation-api/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type UpdateMeRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// ======================================================
// PROFILE
// ======================================================

func (h *UserHandler) GetMe(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var user models.User
	if err := h.db.First(&user, caller.UserID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Could not load your profile.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var user models.User
	if err := h.db.First(&user, caller.UserID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Could not load your profile.")
		return
	}

	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var other models.User
		err := h.db.Where("email = ?", email).First(&other).Error
		if err == nil && other.ID != user.ID {
			httperr.BadRequest(c, "email_taken", "Email already registered by another user.")
			return
		}
		user.Email = email
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Could not update password.")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update your profile.")
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// FAVOURITES
// ======================================================

func (h *UserHandler) AddFavourite(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	hallID := c.Param("hallID")

	var hall models.Hall
	if err := h.db.First(&hall, hallID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeHallNotFound, "Hall not found.")
		return
	}

	var user models.User
	if err := h.db.Preload("FavouriteHalls").First(&user, caller.UserID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Could not load your profile.")
		return
	}

	for _, fav := range user.FavouriteHalls {
		if fav.ID == hall.ID {
			httperr.BadRequest(c, "already_favourited", "Hall is already in favourites.")
			return
		}
	}

	if err := h.db.Model(&user).Association("FavouriteHalls").Append(&hall); err != nil {
		httperr.Internal(c, "failed_to_add_favourite", "Could not add favourite.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"detail": "Hall added to favourites."})
}

func (h *UserHandler) RemoveFavourite(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	hallID := c.Param("hallID")

	var hall models.Hall
	if err := h.db.First(&hall, hallID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeHallNotFound, "Hall not found.")
		return
	}

	var user models.User
	if err := h.db.Preload("FavouriteHalls").First(&user, caller.UserID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Could not load your profile.")
		return
	}

	found := false
	for _, fav := range user.FavouriteHalls {
		if fav.ID == hall.ID {
			found = true
			break
		}
	}
	if !found {
		httperr.BadRequest(c, "not_favourited", "Hall is not in favourites.")
		return
	}

	if err := h.db.Model(&user).Association("FavouriteHalls").Delete(&hall); err != nil {
		httperr.Internal(c, "failed_to_remove_favourite", "Could not remove favourite.")
		return
	}

	c.Status(204)
}

func (h *UserHandler) ListFavourites(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	var user models.User
	if err := h.db.Preload("FavouriteHalls").First(&user, caller.UserID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Could not load your profile.")
		return
	}

	httpresp.List(c, user.FavouriteHalls)
}

// ======================================================
// ADMIN
// ======================================================

func (h *UserHandler) ListAll(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	if caller.Role != models.RoleAdmin {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized to view all users.")
		return
	}

	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Delete(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	if caller.Role != models.RoleAdmin {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized to delete users.")
		return
	}

	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Could not delete user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.Status(204)
}
