package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotelsite/internal/config"
	"hotelsite/internal/database"
	"hotelsite/internal/middleware"
	"hotelsite/internal/modules/availability"
	"hotelsite/internal/modules/booking"
	"hotelsite/internal/modules/catalog"
	"hotelsite/internal/modules/live"
	"hotelsite/internal/modules/site"
	jwtsvc "hotelsite/internal/pkg/jwt"
	"hotelsite/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	enquiryRepo := repository.NewEnquiryRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	hub := live.NewHub()
	defer hub.Close()
	liveHandler := live.NewHandler(hub)

	availabilityService := availability.NewService(roomRepo, roomTypeRepo, bookingRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(bookingRepo, roomRepo, availabilityService, hub, cfg.FormSessionTTL)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(roomRepo, roomTypeRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	siteService := site.NewService(enquiryRepo, subscriberRepo, galleryRepo)
	siteHandler := site.NewHandler(siteService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public: marketing site
		availabilityHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		siteHandler.RegisterRoutes(v1)

		// dashboard (JWT required)
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j))
		{
			availabilityHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			siteHandler.RegisterAdminRoutes(admin)
			liveHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
