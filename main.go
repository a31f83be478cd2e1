package main

import (
	"log"
	"time"

	"booking-app/config"
	"booking-app/database"
	"booking-app/internal/directory"

	routes "booking-app/internal/app/http"
	"booking-app/internal/app/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Connect(config.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestMetrics())

	routes.RegisterRoutes(r, directory.New(db))

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
