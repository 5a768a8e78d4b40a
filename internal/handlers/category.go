package handlers

import (
	"net/http"
	"strconv"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	triviaService *services.TriviaService
}

func NewCategoryHandler(triviaService *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{triviaService: triviaService}
}

type CategoriesResponse struct {
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory uint              `json:"current_category"`
}

// ListCategories godoc
// @Summary      List all categories
// @Description  Get the full category catalog as an id to type mapping
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	catalog, err := h.triviaService.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(catalog) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: catalog})
}

// QuestionsByCategory godoc
// @Summary      List questions in a category
// @Description  Get one page of the questions belonging to a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        page query int false "Page number (default 1)"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.triviaService.QuestionsByCategory(uint(categoryID), pageParam(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(questions) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: uint(categoryID),
	})
}
