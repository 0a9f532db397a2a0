package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"officespace/internal/database"
	"officespace/internal/middleware"
	"officespace/internal/modules/admin"
	"officespace/internal/modules/auth"
	"officespace/internal/modules/notification"
	"officespace/internal/modules/office"
	"officespace/internal/modules/reservation"
	jwtsvc "officespace/internal/pkg/jwt"
	"officespace/internal/repository"
	"officespace/internal/storage"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewLocalStorage(os.Getenv("UPLOADS_DIR"))
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	imageRepo := repository.NewOfficeImageRepository(db)
	tagRepo := repository.NewTagRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notification.NewHub()
	notifRepo := notification.NewRepository(db)
	notifService := notification.NewService(notifRepo, userRepo, hub)
	notifHandler := notification.NewHandler(notifService, hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	officeService := office.NewService(officeRepo, imageRepo, tagRepo, notifService, store)
	officeHandler := office.NewHandler(officeService)

	reservationService := reservation.NewService(reservationRepo)
	reservationHandler := reservation.NewHandler(reservationService)

	adminService := admin.NewService(officeRepo, notifService)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public reads run with optional auth so a logged-in host listing
		// their own offices also sees pending and hidden ones
		public := v1.Group("/")
		public.Use(middleware.OptionalJWTAuth(j))
		{
			authHandler.RegisterPublicRoutes(public)
			officeHandler.RegisterPublicRoutes(public)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			officeHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
		}

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.ModeratorOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	// uploaded office images are served straight from local storage
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	r.Static("/static", uploadsDir)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
