package repository

import (
	"github.com/brainfeed/brainfeed-be/internal/entity"
	"gorm.io/gorm"
)

type (
	// ContentRepository adalah akses data per-user untuk semua konten belajar.
	// Setiap list accessor di-scope ketat ke userID, urut created_at DESC.
	ContentRepository interface {
		// Book operations
		CreateBook(db *gorm.DB, book *entity.Book) error
		FindBooksByUserID(db *gorm.DB, userID string) ([]entity.Book, error)

		// Video operations
		CreateVideo(db *gorm.DB, video *entity.Video) error
		FindVideosByUserID(db *gorm.DB, userID string) ([]entity.Video, error)

		// Question operations
		CreateQuestions(db *gorm.DB, questions []entity.Question) error
		FindQuestionsByUserID(db *gorm.DB, userID string) ([]entity.Question, error)

		// Flashcard operations
		CreateFlashcards(db *gorm.DB, flashcards []entity.Flashcard) error
		FindFlashcardsByUserID(db *gorm.DB, userID string) ([]entity.Flashcard, error)
	}

	contentRepository struct {
		db *gorm.DB
	}
)

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Book operations
func (r *contentRepository) CreateBook(db *gorm.DB, book *entity.Book) error {
	if db == nil {
		db = r.db
	}
	return db.Create(book).Error
}

func (r *contentRepository) FindBooksByUserID(db *gorm.DB, userID string) ([]entity.Book, error) {
	if db == nil {
		db = r.db
	}
	var books []entity.Book
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&books).Error
	return books, err
}

// Video operations
func (r *contentRepository) CreateVideo(db *gorm.DB, video *entity.Video) error {
	if db == nil {
		db = r.db
	}
	return db.Create(video).Error
}

func (r *contentRepository) FindVideosByUserID(db *gorm.DB, userID string) ([]entity.Video, error) {
	if db == nil {
		db = r.db
	}
	var videos []entity.Video
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// Question operations
func (r *contentRepository) CreateQuestions(db *gorm.DB, questions []entity.Question) error {
	if db == nil {
		db = r.db
	}
	if len(questions) == 0 {
		return nil
	}
	return db.Create(&questions).Error
}

func (r *contentRepository) FindQuestionsByUserID(db *gorm.DB, userID string) ([]entity.Question, error) {
	if db == nil {
		db = r.db
	}
	var questions []entity.Question
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&questions).Error
	return questions, err
}

// Flashcard operations
func (r *contentRepository) CreateFlashcards(db *gorm.DB, flashcards []entity.Flashcard) error {
	if db == nil {
		db = r.db
	}
	if len(flashcards) == 0 {
		return nil
	}
	return db.Create(&flashcards).Error
}

func (r *contentRepository) FindFlashcardsByUserID(db *gorm.DB, userID string) ([]entity.Flashcard, error) {
	if db == nil {
		db = r.db
	}
	var flashcards []entity.Flashcard
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&flashcards).Error
	return flashcards, err
}
