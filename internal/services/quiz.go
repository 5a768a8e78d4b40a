package services

import (
	"math/rand"

	"trivia-api/internal/models"
)

// NextQuestion picks one question uniformly at random from those not in
// previous, restricted to categoryID unless it is 0 ("all categories").
// Returns ErrNoCandidates when nothing remains to pick from, including
// when categoryID matches no category at all.
func (s *TriviaService) NextQuestion(previous []uint, categoryID uint) (*models.Question, error) {
	query := s.db.Order("id ASC")
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}

	var candidates []models.Question
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	question := candidates[rand.Intn(len(candidates))]
	return &question, nil
}
