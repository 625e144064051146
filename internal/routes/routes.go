package routes

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/auth"
	"github.com/barberbook/barberbook-api/internal/cache"
	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/handlers"
	infraRepo "github.com/barberbook/barberbook-api/internal/infra/repository"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/payments"
	"github.com/barberbook/barberbook-api/internal/storage"
	ucbooking "github.com/barberbook/barberbook-api/internal/usecase/booking"
)

func Register(r *gin.Engine, db *gorm.DB, rdb *goredis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	dayCache := cache.NewDayBookings(rdb)
	flowStore := cache.NewFlowStore(rdb)
	oauthStates := cache.NewOAuthState(rdb)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	var payProvider ucbooking.PaymentProvider
	if cfg.PaymentsEnabled() {
		mp, err := payments.NewMercadoPago(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("payments disabled: mercadopago init failed")
		} else {
			payProvider = mp
		}
	}

	var uploader *handlers.ImageUploader
	if cfg.StorageEnabled() {
		uploader = handlers.NewImageUploader(storage.NewImageStore(cfg))
	} else {
		uploader = handlers.NewImageUploader(nil)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucbooking.NewGetAvailability(repo, dayCache)
	createBookingUC := ucbooking.NewCreateBooking(repo, dayCache, payProvider, auditDispatcher)
	listBookingsUC := ucbooking.NewListUserBookings(repo)
	flowUC := ucbooking.NewBookingFlow(repo, flowStore, availabilityUC, createBookingUC)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(repo, availabilityUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, listBookingsUC, flowUC)

	barbershopHandler := handlers.NewBarbershopHandler(db, uploader, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, uploader, auditDispatcher)
	hoursHandler := handlers.NewHoursHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbershops", publicHandler.ListBarbershops)
		api.GET("/barbershops/:slug", publicHandler.GetBarbershop)
		api.GET("/barbershops/:slug/availability", publicHandler.Availability)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		if cfg.GoogleOAuthEnabled() {
			googleHandler := handlers.NewGoogleAuthHandler(
				db, cfg, auth.NewGoogle(cfg), oauthStates,
			)
			api.GET("/auth/google/login", googleHandler.Login)
			api.GET("/auth/google/callback", googleHandler.Callback)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", bookingHandler.ListMine)

			secured.POST("/bookings", bookingHandler.Create)

			secured.POST("/bookings/flow", bookingHandler.StartFlow)
			secured.GET("/bookings/flow/:id", bookingHandler.GetFlow)
			secured.PATCH("/bookings/flow/:id/date", bookingHandler.FlowSelectDate)
			secured.PATCH("/bookings/flow/:id/slot", bookingHandler.FlowSelectSlot)
			secured.POST("/bookings/flow/:id/confirm", bookingHandler.FlowConfirm)

			// ------------------------------
			// OWNER
			// ------------------------------
			owner := secured.Group("/me")
			owner.Use(middleware.OwnerOnly())
			{
				owner.GET("/barbershop", barbershopHandler.GetMine)
				owner.PATCH("/barbershop", barbershopHandler.UpdateMine)
				owner.POST("/barbershop/image", barbershopHandler.UploadImage)

				owner.GET("/services", serviceHandler.List)
				owner.POST("/services", serviceHandler.Create)
				owner.PATCH("/services/:id", serviceHandler.Update)
				owner.POST("/services/:id/image", serviceHandler.UploadImage)

				owner.GET("/hours", hoursHandler.Get)
				owner.PUT("/hours", hoursHandler.Update)

				owner.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
