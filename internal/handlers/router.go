package handlers

import (
	"net/http"

	"trivia-api/internal/middleware"
	"trivia-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every endpoint onto a gin engine. Handlers receive the
// service explicitly so tests can run the full router against a
// substitute store.
func NewRouter(triviaService *services.TriviaService) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Unknown routes and verb mismatches still answer with the uniform
	// error body.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) { abortWithError(c, http.StatusMethodNotAllowed) })
	r.NoRoute(func(c *gin.Context) { abortWithError(c, http.StatusNotFound) })

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	categoryHandler := NewCategoryHandler(triviaService)
	questionHandler := NewQuestionHandler(triviaService)
	quizHandler := NewQuizHandler(triviaService)

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.QuestionsByCategory)
	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateOrSearch)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
