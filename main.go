package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"score-leaderboard-service/handlers"
	"score-leaderboard-service/models"
	"score-leaderboard-service/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	app := fiber.New()

	app.Use(logger.New())

	// Public, un-credentialed surface: any origin may call it
	app.Use(cors.New())

	db, err := openDatabase()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&models.ScoreRecord{}); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	limiter := services.NewCooldownLimiter(services.SubmitCooldown)
	scoreService := services.NewScoreService(db, services.SystemClock(), limiter)
	scoreService.StartCooldownSweeper()

	handlers.SetupScoreRoutes(app, scoreService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("score backend running on http://localhost:%s", port)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// openDatabase connects to postgres when DATABASE_URL is set and falls back to
// a local sqlite file otherwise.
func openDatabase() (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "./scores.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
