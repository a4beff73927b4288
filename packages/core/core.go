package core

import (
	"core/cron"
	"core/handlers"
	"core/services"
	"core/storage"
	"log"

	authMiddleware "auth/middleware"
	authModels "auth/models"
	authUtils "auth/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	BookingHandler    *handlers.BookingHandler
	TournamentHandler *handlers.TournamentHandler
	PricingHandler    *handlers.PricingHandler
	GalleryHandler    *handlers.GalleryHandler
	SlideshowHandler  *handlers.SlideshowHandler
	MessageHandler    *handlers.MessageHandler
	SettingsHandler   *handlers.SettingsHandler
	StatsHandler      *handlers.StatsHandler
	Scheduler         *cron.Scheduler
	db                *gorm.DB
}

func NewModule(db *gorm.DB, store storage.ObjectStore, notifier services.ContactNotifier) *Module {
	housekeeping := services.NewHousekeepingService(db)
	scheduler := cron.NewScheduler(housekeeping, func() error {
		return authUtils.CleanExpiredTokens(db)
	})

	return &Module{
		BookingHandler:    handlers.NewBookingHandler(db),
		TournamentHandler: handlers.NewTournamentHandler(db),
		PricingHandler:    handlers.NewPricingHandler(db),
		GalleryHandler:    handlers.NewGalleryHandler(db, store),
		SlideshowHandler:  handlers.NewSlideshowHandler(db, store),
		MessageHandler:    handlers.NewMessageHandler(db, notifier),
		SettingsHandler:   handlers.NewSettingsHandler(db),
		StatsHandler:      handlers.NewStatsHandler(db),
		Scheduler:         scheduler,
		db:                db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("/availability", m.BookingHandler.GetAvailability)
		bookings.POST("", m.BookingHandler.CreateBooking)
		bookings.GET("/:id/qr", m.BookingHandler.GetBookingQR)
	}

	tournaments := r.Group("/tournaments")
	{
		tournaments.GET("", m.TournamentHandler.GetAllTournaments)
		tournaments.GET("/:id", m.TournamentHandler.GetTournament)
		tournaments.POST("/:id/register", m.TournamentHandler.RegisterPlayer)
	}

	r.GET("/pricing", m.PricingHandler.GetPricing)
	r.GET("/gallery", m.GalleryHandler.GetGallery)
	r.GET("/slideshow", m.SlideshowHandler.GetSlides)
	r.POST("/contact", m.MessageHandler.CreateMessage)
	r.GET("/settings", m.SettingsHandler.GetSettings)

	admin := r.Group("/admin",
		authMiddleware.JWTMiddleware(),
		authMiddleware.RequireRole(m.db, authModels.RoleAdmin))
	{
		admin.GET("/bookings", m.BookingHandler.GetAllBookings)
		admin.PATCH("/bookings/:id", m.BookingHandler.UpdateBooking)
		admin.DELETE("/bookings/:id", m.BookingHandler.DeleteBooking)

		admin.GET("/blocked-slots", m.BookingHandler.GetBlockedSlots)
		admin.POST("/blocked-slots", m.BookingHandler.CreateBlockedSlot)
		admin.DELETE("/blocked-slots/:id", m.BookingHandler.DeleteBlockedSlot)

		admin.POST("/tournaments", m.TournamentHandler.CreateTournament)
		admin.PATCH("/tournaments/:id", m.TournamentHandler.UpdateTournament)
		admin.DELETE("/tournaments/:id", m.TournamentHandler.DeleteTournament)
		admin.GET("/tournaments/:id/registrations", m.TournamentHandler.GetRegistrations)
		admin.DELETE("/tournaments/:id/registrations/:regId", m.TournamentHandler.DeleteRegistration)

		admin.GET("/pricing", m.PricingHandler.GetAllPricing)
		admin.POST("/pricing", m.PricingHandler.CreatePricing)
		admin.PATCH("/pricing/:id", m.PricingHandler.UpdatePricing)
		admin.DELETE("/pricing/:id", m.PricingHandler.DeletePricing)

		admin.POST("/gallery", m.GalleryHandler.UploadImage)
		admin.PATCH("/gallery/:id", m.GalleryHandler.UpdateImage)
		admin.DELETE("/gallery/:id", m.GalleryHandler.DeleteImage)

		admin.GET("/slideshow", m.SlideshowHandler.GetAllSlides)
		admin.POST("/slideshow", m.SlideshowHandler.UploadSlide)
		admin.PATCH("/slideshow/:id", m.SlideshowHandler.UpdateSlide)
		admin.DELETE("/slideshow/:id", m.SlideshowHandler.DeleteSlide)

		admin.GET("/messages", m.MessageHandler.GetMessages)
		admin.PATCH("/messages/:id/read", m.MessageHandler.MarkMessageRead)
		admin.DELETE("/messages/:id", m.MessageHandler.DeleteMessage)

		admin.PATCH("/settings", m.SettingsHandler.UpdateSettings)

		admin.GET("/stats", m.StatsHandler.GetStats)
	}
}

// StartScheduler starts the cron scheduler for housekeeping jobs
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunHousekeepingNow manually triggers housekeeping (useful for testing)
func (m *Module) RunHousekeepingNow() {
	log.Println("Manually triggering housekeeping...")
	m.Scheduler.RunNow()
}
