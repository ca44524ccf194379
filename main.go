package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"concierge-backend/config"
	"concierge-backend/controllers"
	"concierge-backend/routes"
	"concierge-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue session tokens.")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	roomService := services.NewRoomService(db)
	menuService := services.NewMenuService(db)
	orderService := services.NewOrderService(db)
	adService := services.NewAdService(db)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	serviceController := controllers.NewServiceController(menuService)
	menuController := controllers.NewMenuController(menuService)
	orderController := controllers.NewOrderController(orderService)
	adController := controllers.NewAdController(adService)

	// Build router
	router := routes.SetupRouter(roomController, serviceController, menuController, orderController, adController)

	// Sweep expired ad campaigns so tablets stop showing them
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1m", func() {
		if _, err := adService.DeactivateExpired(time.Now()); err != nil {
			log.Printf("⚠️  ad sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("❌ Failed to schedule ad sweep: %v", err)
	}
	scheduler.Start()

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
