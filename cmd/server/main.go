package main

import (
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/handlers"
	"trivia-api/internal/services"

	_ "trivia-api/docs"
)

// @title           Trivia API
// @version         1.0
// @description     REST API serving trivia questions and categories
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db)

	triviaService := services.NewTriviaService(db)
	r := handlers.NewRouter(triviaService)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
