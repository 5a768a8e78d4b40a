package handlers

import (
	"net/http"
	"strconv"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	triviaService *services.TriviaService
}

func NewQuestionHandler(triviaService *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{triviaService: triviaService}
}

type QuestionListResponse struct {
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory *uint             `json:"current_category"`
}

type SearchResponse struct {
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *uint             `json:"current_category"`
}

// CreateOrSearchRequest carries both modes of POST /questions: a
// non-empty searchTerm selects search, anything else selects create.
type CreateOrSearchRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
	SearchTerm string `json:"searchTerm"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Get one page of all questions with the category catalog
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.triviaService.ListQuestions(pageParam(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(questions) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	catalog, err := h.triviaService.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Questions:       questions,
		TotalQuestions:  len(questions),
		Categories:      catalog,
		CurrentCategory: nil,
	})
}

// CreateOrSearch godoc
// @Summary      Create a question or search questions
// @Description  With a non-empty searchTerm, returns questions containing the term; otherwise creates a question from the remaining fields
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateOrSearchRequest true "Question fields or search term"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateOrSearch(c *gin.Context) {
	var req CreateOrSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	if req.SearchTerm != "" {
		h.search(c, req.SearchTerm)
		return
	}
	h.create(c, req)
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	questions, err := h.triviaService.SearchQuestions(term, pageParam(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	// Zero matches is a valid empty result, not a failure.
	c.JSON(http.StatusOK, SearchResponse{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}

func (h *QuestionHandler) create(c *gin.Context, req CreateOrSearchRequest) {
	input := services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	if _, err := h.triviaService.CreateQuestion(input); err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	if err := h.triviaService.DeleteQuestion(uint(questionID)); err != nil {
		// Deleting a missing question is unprocessable, not a 404:
		// the request targets data that cannot be acted on.
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
