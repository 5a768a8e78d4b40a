package services

import (
	"testing"

	"trivia-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestService opens a private in-memory database per test. The named
// shared-cache DSN keeps every pooled connection on the same database.
func newTestService(t *testing.T) *TriviaService {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))

	return NewTriviaService(db)
}

func seedTestData(t *testing.T, s *TriviaService) {
	t.Helper()

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
		{Type: "History"},
		{Type: "Entertainment"},
		{Type: "Sports"},
	}
	require.NoError(t, s.db.Create(&categories).Error)

	questions := []models.Question{
		{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
	}
	require.NoError(t, s.db.Create(&questions).Error)
}

func TestListCategories(t *testing.T) {
	s := newTestService(t)
	seedTestData(t, s)

	catalog, err := s.ListCategories()
	require.NoError(t, err)

	assert.Len(t, catalog, 6)
	assert.Equal(t, "Science", catalog[1])
	assert.Equal(t, "Sports", catalog[6])
}

func TestListCategoriesEmpty(t *testing.T) {
	s := newTestService(t)

	catalog, err := s.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, catalog)
}
