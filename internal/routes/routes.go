package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VenueServices/hall-reservation-api/internal/audit"
	"github.com/VenueServices/hall-reservation-api/internal/cache"
	"github.com/VenueServices/hall-reservation-api/internal/config"
	"github.com/VenueServices/hall-reservation-api/internal/handlers"
	infraRepo "github.com/VenueServices/hall-reservation-api/internal/infra/repository"
	"github.com/VenueServices/hall-reservation-api/internal/middleware"
	"github.com/VenueServices/hall-reservation-api/internal/storage"
	ucReservation "github.com/VenueServices/hall-reservation-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	redisClient := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	hallCache := cache.NewHallCache(redisClient, 5*time.Minute)

	uploader := storage.NewS3Uploader(cfg)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)

	listReservationsUC := ucReservation.NewListReservations(
		reservationRepo,
	)

	updateStatusUC := ucReservation.NewUpdateReservationStatus(
		reservationRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	hallHandler := handlers.NewHallHandler(db, hallCache, uploader, auditDispatcher)
	reviewHandler := handlers.NewReviewHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listReservationsUC,
		updateStatusUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================

	// ------------------------------
	// AUTH
	// ------------------------------
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ------------------------------
	// PUBLIC READS
	// ------------------------------
	r.GET("/halls", hallHandler.ListAll)
	r.GET("/halls/search", hallHandler.Search)
	r.GET("/halls/:id", hallHandler.Get)
	r.GET("/reviews/hall/:hallID", reviewHandler.ListForHall)

	// ------------------------------
	// AUTHENTICATED
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		// halls (provider / admin)
		secured.POST("/halls", hallHandler.Create)
		secured.PUT("/halls/:id", hallHandler.Update)
		secured.DELETE("/halls/:id", hallHandler.Delete)
		secured.POST("/halls/:id/photo", hallHandler.UploadPhoto)

		// reservations
		secured.POST("/reservations", reservationHandler.Create)
		secured.GET("/reservations", reservationHandler.List)
		secured.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)

		// users
		secured.GET("/users/me", userHandler.GetMe)
		secured.PUT("/users/me", userHandler.UpdateMe)
		secured.GET("/users/favourites", userHandler.ListFavourites)
		secured.POST("/users/favourites/:hallID", userHandler.AddFavourite)
		secured.DELETE("/users/favourites/:hallID", userHandler.RemoveFavourite)
		secured.GET("/users", userHandler.ListAll)
		secured.DELETE("/users/:id", userHandler.Delete)

		// reviews
		secured.POST("/reviews", reviewHandler.Create)
		secured.DELETE("/reviews/:id", reviewHandler.Delete)

		// audit (admin)
		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
