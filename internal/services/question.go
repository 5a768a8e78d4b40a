package services

import (
	"errors"
	"strings"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuestionInput struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// ListQuestions returns page p of all questions ordered by id.
func (s *TriviaService) ListQuestions(page int) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return Paginate(questions, page), nil
}

// SearchQuestions returns page p of the questions whose text contains
// term as a case-insensitive substring.
func (s *TriviaService) SearchQuestions(term string, page int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.
		Where("LOWER(question) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return Paginate(questions, page), nil
}

// QuestionsByCategory returns page p of the questions in the given
// category, ordered by id.
func (s *TriviaService) QuestionsByCategory(categoryID uint, page int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return Paginate(questions, page), nil
}

// CreateQuestion persists a new question. Fields are stored as given;
// absent fields arrive zero-valued and are stored that way.
func (s *TriviaService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes the question with the given id, or reports
// ErrQuestionNotFound when no such row exists.
func (s *TriviaService) DeleteQuestion(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return s.db.Delete(&question).Error
}
