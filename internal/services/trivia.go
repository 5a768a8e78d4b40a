package services

import (
	"errors"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrQuestionNotFound is returned when an operation targets a
	// question id that does not exist in the store.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrNoCandidates is returned by quiz selection when every question
	// in scope has already been seen, or the category holds none.
	ErrNoCandidates = errors.New("no quiz candidates remain")
)

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

// ListCategories returns the full catalog as an id -> type mapping.
func (s *TriviaService) ListCategories() (map[uint]string, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	catalog := make(map[uint]string, len(categories))
	for _, c := range categories {
		catalog[c.ID] = c.Type
	}
	return catalog, nil
}
