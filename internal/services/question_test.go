package services

import (
	"fmt"
	"testing"

	"trivia-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuestionsPaged(t *testing.T) {
	s := newTestService(t)
	for i := 1; i <= 23; i++ {
		_, err := s.CreateQuestion(QuestionInput{
			Question:   fmt.Sprintf("question %d", i),
			Answer:     fmt.Sprintf("answer %d", i),
			Category:   1,
			Difficulty: 1,
		})
		require.NoError(t, err)
	}

	page1, err := s.ListQuestions(1)
	require.NoError(t, err)
	assert.Len(t, page1, 10)
	assert.Equal(t, "question 1", page1[0].Question)

	page3, err := s.ListQuestions(3)
	require.NoError(t, err)
	assert.Len(t, page3, 3)

	page4, err := s.ListQuestions(4)
	require.NoError(t, err)
	assert.Empty(t, page4)
}

func TestListQuestionsOrderedByID(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	questions, err := s.ListQuestions(1)
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	for i := 1; i < len(questions); i++ {
		assert.Less(t, questions[i-1].ID, questions[i].ID)
	}
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	for _, term := range []string{"title", "TITLE", "TiTlE"} {
		matches, err := s.SearchQuestions(term, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1, "term %q", term)
		assert.Contains(t, matches[0].Question, "entitled")
	}
}

func TestSearchQuestionsNoMatch(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	matches, err := s.SearchQuestions("xylophone", 1)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestQuestionsByCategory(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	questions, err := s.QuestionsByCategory(1, 1)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, uint(1), q.Category)
	}
}

func TestQuestionsByCategoryUnknown(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	questions, err := s.QuestionsByCategory(99, 1)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestCreateQuestionVisibleInListing(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	created, err := s.CreateQuestion(QuestionInput{
		Question:   "Which dung beetle was worshipped by the ancient Egyptians?",
		Answer:     "Scarab",
		Category:   4,
		Difficulty: 4,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	questions, err := s.ListQuestions(1)
	require.NoError(t, err)

	found := false
	for _, q := range questions {
		if q.ID == created.ID {
			found = true
			assert.Equal(t, "Scarab", q.Answer)
		}
	}
	assert.True(t, found)
}

func TestDeleteQuestion(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	require.NoError(t, s.DeleteQuestion(1))

	var q models.Question
	err := s.db.First(&q, 1).Error
	assert.Error(t, err)
}

func TestDeleteQuestionMissing(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	err := s.DeleteQuestion(999)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
