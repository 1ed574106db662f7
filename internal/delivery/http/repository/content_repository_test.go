package repository

import (
	"testing"
	"time"

	"github.com/brainfeed/brainfeed-be/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Book{},
		&entity.Video{},
		&entity.Question{},
		&entity.Flashcard{},
	))
	return db
}

func TestBookCreateAndFind(t *testing.T) {
	db := testDB(t)
	repo := NewContentRepository(db)

	older := entity.Book{
		ID: "book_1", Title: "Deep Work", Author: "Cal Newport", Topic: "focus",
		UserID: "user-1", CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := entity.Book{
		ID: "book_2", Title: "Atomic Habits", Author: "James Clear", Topic: "habits",
		UserID: "user-1", CreatedAt: time.Now(),
	}
	other := entity.Book{
		ID: "book_3", Title: "Other", Author: "Someone", Topic: "misc",
		UserID: "user-2", CreatedAt: time.Now(),
	}

	require.NoError(t, repo.CreateBook(nil, &older))
	require.NoError(t, repo.CreateBook(nil, &newer))
	require.NoError(t, repo.CreateBook(nil, &other))

	books, err := repo.FindBooksByUserID(nil, "user-1")
	require.NoError(t, err)
	require.Len(t, books, 2)
	// Newest first.
	assert.Equal(t, "book_2", books[0].ID)
	assert.Equal(t, "book_1", books[1].ID)
}

func TestVideoCreateAndFind(t *testing.T) {
	db := testDB(t)
	repo := NewContentRepository(db)

	video := entity.Video{
		ID: "video_1", Title: "YouTube Video", Author: "Unknown Creator",
		Topic: "history", VideoID: "abc123def45",
		URL: "https://www.youtube.com/watch?v=abc123def45", Duration: 600,
		UserID: "user-1", CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateVideo(nil, &video))

	videos, err := repo.FindVideosByUserID(nil, "user-1")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "abc123def45", videos[0].VideoID)

	none, err := repo.FindVideosByUserID(nil, "user-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionBatchInsert(t *testing.T) {
	db := testDB(t)
	repo := NewContentRepository(db)

	questions := []entity.Question{
		{
			ID: "q_1", ContentType: "book", ContentID: "book_1",
			QuestionType: "mcq", QuestionText: "First?",
			Options: `["A","B"]`, CorrectAnswer: "A",
			UserID: "user-1", CreatedAt: time.Now(),
		},
		{
			ID: "q_2", ContentType: "book", ContentID: "book_1",
			QuestionType: "mcq", QuestionText: "Second?",
			Options: `["A","B"]`, CorrectAnswer: "B",
			UserID: "user-1", CreatedAt: time.Now(),
		},
	}
	require.NoError(t, repo.CreateQuestions(nil, questions))

	found, err := repo.FindQuestionsByUserID(nil, "user-1")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestCreateEmptySlicesAreNoops(t *testing.T) {
	db := testDB(t)
	repo := NewContentRepository(db)

	// gorm errors on empty batch inserts; the repository guards against it.
	assert.NoError(t, repo.CreateQuestions(nil, nil))
	assert.NoError(t, repo.CreateFlashcards(nil, nil))
}

func TestFlashcardCreateAndFind(t *testing.T) {
	db := testDB(t)
	repo := NewContentRepository(db)

	flashcards := []entity.Flashcard{
		{
			ID: "f_1", ContentType: "video", ContentID: "video_1",
			FrontText: "Front", BackText: "Back",
			UserID: "user-1", CreatedAt: time.Now(),
		},
	}
	require.NoError(t, repo.CreateFlashcards(nil, flashcards))

	found, err := repo.FindFlashcardsByUserID(nil, "user-1")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Front", found[0].FrontText)
}
