package main

import (
	"log"

	"goblog/config"
	"goblog/controllers"
	"goblog/database"
	"goblog/middleware"
	"goblog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CurrentUser(db, cfg))

	r.LoadHTMLGlob("templates/*.html")

	authController := controllers.NewAuthController(db, cfg)
	postController := controllers.NewPostController(db)

	routes.SetupRoutes(r, authController, postController)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
