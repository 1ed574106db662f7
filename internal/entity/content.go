package entity

import (
	"time"
)

// Book - konten buku milik satu user, immutable kecuali count fields
type Book struct {
	ID              string    `gorm:"primarykey;size:100" json:"id"` // book_<uuid>
	Title           string    `gorm:"size:255;not null" json:"title"`
	Author          string    `gorm:"size:255;not null" json:"author"`
	Topic           string    `gorm:"size:100;not null;index" json:"topic"`
	Description     string    `gorm:"type:text" json:"description"`
	CoverURL        string    `gorm:"type:text" json:"cover_url"`
	TotalQuestions  int       `gorm:"not null;default:0" json:"total_questions"`
	TotalFlashcards int       `gorm:"not null;default:0" json:"total_flashcards"`
	UserID          string    `gorm:"size:100;not null;index" json:"user_id"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

// Video - konten video (YouTube) milik satu user
type Video struct {
	ID              string    `gorm:"primarykey;size:100" json:"id"` // video_<uuid>
	Title           string    `gorm:"size:255;not null" json:"title"`
	Author          string    `gorm:"size:255;not null" json:"author"`
	Topic           string    `gorm:"size:100;not null;index" json:"topic"`
	VideoID         string    `gorm:"size:50;not null" json:"video_id"`
	URL             string    `gorm:"type:text;not null" json:"url"`
	ThumbnailURL    string    `gorm:"type:text" json:"thumbnail_url"`
	Duration        int       `gorm:"not null;default:0" json:"duration"` // seconds
	TotalQuestions  int       `gorm:"not null;default:0" json:"total_questions"`
	TotalFlashcards int       `gorm:"not null;default:0" json:"total_flashcards"`
	UserID          string    `gorm:"size:100;not null;index" json:"user_id"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}

// Question - soal kuis hasil generate, options disimpan sebagai JSON array
type Question struct {
	ID            string    `gorm:"primarykey;size:100" json:"id"` // q_<uuid>
	ContentType   string    `gorm:"size:20;not null" json:"content_type"` // book, video
	ContentID     string    `gorm:"size:100;not null;index" json:"content_id"`
	ContentTitle  string    `gorm:"size:255" json:"content_title"`
	ContentAuthor string    `gorm:"size:255" json:"content_author"`
	Topic         string    `gorm:"size:100;index" json:"topic"`
	QuestionType  string    `gorm:"size:30;not null" json:"question_type"` // mcq, true_false, ...
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	Options       string    `gorm:"type:text;not null" json:"options"` // JSON array: ["A","B","C","D"]
	CorrectAnswer string    `gorm:"type:text;not null" json:"correct_answer"`
	Explanation   string    `gorm:"type:text" json:"explanation"`
	UserID        string    `gorm:"size:100;not null;index" json:"user_id"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}

// Flashcard - kartu hafalan hasil generate
type Flashcard struct {
	ID            string    `gorm:"primarykey;size:100" json:"id"` // f_<uuid>
	ContentType   string    `gorm:"size:20;not null" json:"content_type"`
	ContentID     string    `gorm:"size:100;not null;index" json:"content_id"`
	ContentTitle  string    `gorm:"size:255" json:"content_title"`
	ContentAuthor string    `gorm:"size:255" json:"content_author"`
	Topic         string    `gorm:"size:100;index" json:"topic"`
	FrontText     string    `gorm:"type:text;not null" json:"front_text"`
	BackText      string    `gorm:"type:text;not null" json:"back_text"`
	UserID        string    `gorm:"size:100;not null;index" json:"user_id"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
