package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ramadhanip/optik-care-app/config"
	"github.com/ramadhanip/optik-care-app/database"
	"github.com/ramadhanip/optik-care-app/middlewares"
	"github.com/ramadhanip/optik-care-app/models"
	"github.com/ramadhanip/optik-care-app/router"
	"github.com/ramadhanip/optik-care-app/services"
	"github.com/ramadhanip/optik-care-app/utils"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Simpan koneksi database untuk dipakai lintas package
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if os.Getenv("SEED_DB") == "true" {
		if err := database.SeedDemoData(db); err != nil {
			utils.ErrorLogger.Printf("Error seeding demo data: %v", err)
		}
	}

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	recommender := services.NewFrameRecommender()
	r := router.SetupRouter(db, recommender)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.OptikStore{},
		&models.Product{},
		&models.Prescription{},
		&models.Appointment{},
		&models.FaceAnalysis{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
