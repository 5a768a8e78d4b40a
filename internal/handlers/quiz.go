package handlers

import (
	"errors"
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	triviaService *services.TriviaService
}

func NewQuizHandler(triviaService *services.TriviaService) *QuizHandler {
	return &QuizHandler{triviaService: triviaService}
}

type QuizCategory struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuizResponse struct {
	Question *models.Question `json:"question"`
}

// NextQuestion godoc
// @Summary      Get the next quiz question
// @Description  Returns one random question not among previous_questions, restricted to the chosen category (id 0 means all categories)
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Previous question ids and category selector"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}
	if req.QuizCategory == nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.triviaService.NextQuestion(req.PreviousQuestions, req.QuizCategory.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoCandidates) {
			abortWithError(c, http.StatusUnprocessableEntity)
			return
		}
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{Question: question})
}
