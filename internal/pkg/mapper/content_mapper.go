package mapper

import (
	"encoding/json"
	"time"

	apiEntity "github.com/brainfeed/brainfeed-be/internal/delivery/http/entity"
	dbEntity "github.com/brainfeed/brainfeed-be/internal/entity"
)

// ConvertToQuestion - Convert DB entity to domain entity (options JSON -> slice)
func ConvertToQuestion(dbQuestion *dbEntity.Question) (apiEntity.Question, error) {
	var options []string
	if err := json.Unmarshal([]byte(dbQuestion.Options), &options); err != nil {
		return apiEntity.Question{}, err
	}

	return apiEntity.Question{
		ID:            dbQuestion.ID,
		ContentType:   apiEntity.ContentType(dbQuestion.ContentType),
		ContentID:     dbQuestion.ContentID,
		ContentTitle:  dbQuestion.ContentTitle,
		ContentAuthor: dbQuestion.ContentAuthor,
		Topic:         dbQuestion.Topic,
		QuestionType:  apiEntity.QuestionType(dbQuestion.QuestionType),
		QuestionText:  dbQuestion.QuestionText,
		Options:       options,
		CorrectAnswer: dbQuestion.CorrectAnswer,
		Explanation:   dbQuestion.Explanation,
		UserID:        dbQuestion.UserID,
		CreatedAt:     dbQuestion.CreatedAt.Format(time.RFC3339),
	}, nil
}

// ConvertToQuestionRow - Convert domain entity to DB entity
func ConvertToQuestionRow(q *apiEntity.Question) (dbEntity.Question, error) {
	optionsJSON, err := json.Marshal(q.Options)
	if err != nil {
		return dbEntity.Question{}, err
	}

	createdAt, err := time.Parse(time.RFC3339, q.CreatedAt)
	if err != nil {
		createdAt = time.Now()
	}

	return dbEntity.Question{
		ID:            q.ID,
		ContentType:   string(q.ContentType),
		ContentID:     q.ContentID,
		ContentTitle:  q.ContentTitle,
		ContentAuthor: q.ContentAuthor,
		Topic:         q.Topic,
		QuestionType:  string(q.QuestionType),
		QuestionText:  q.QuestionText,
		Options:       string(optionsJSON),
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		UserID:        q.UserID,
		CreatedAt:     createdAt,
	}, nil
}

func ConvertToFlashcard(dbFlashcard *dbEntity.Flashcard) apiEntity.Flashcard {
	return apiEntity.Flashcard{
		ID:            dbFlashcard.ID,
		ContentType:   apiEntity.ContentType(dbFlashcard.ContentType),
		ContentID:     dbFlashcard.ContentID,
		ContentTitle:  dbFlashcard.ContentTitle,
		ContentAuthor: dbFlashcard.ContentAuthor,
		Topic:         dbFlashcard.Topic,
		FrontText:     dbFlashcard.FrontText,
		BackText:      dbFlashcard.BackText,
		UserID:        dbFlashcard.UserID,
		CreatedAt:     dbFlashcard.CreatedAt.Format(time.RFC3339),
	}
}

func ConvertToFlashcardRow(f *apiEntity.Flashcard) dbEntity.Flashcard {
	createdAt, err := time.Parse(time.RFC3339, f.CreatedAt)
	if err != nil {
		createdAt = time.Now()
	}

	return dbEntity.Flashcard{
		ID:            f.ID,
		ContentType:   string(f.ContentType),
		ContentID:     f.ContentID,
		ContentTitle:  f.ContentTitle,
		ContentAuthor: f.ContentAuthor,
		Topic:         f.Topic,
		FrontText:     f.FrontText,
		BackText:      f.BackText,
		UserID:        f.UserID,
		CreatedAt:     createdAt,
	}
}

func ConvertToBook(dbBook *dbEntity.Book) apiEntity.Book {
	return apiEntity.Book{
		ID:              dbBook.ID,
		Title:           dbBook.Title,
		Author:          dbBook.Author,
		Topic:           dbBook.Topic,
		Description:     dbBook.Description,
		CoverURL:        dbBook.CoverURL,
		TotalQuestions:  dbBook.TotalQuestions,
		TotalFlashcards: dbBook.TotalFlashcards,
		UserID:          dbBook.UserID,
		CreatedAt:       dbBook.CreatedAt.Format(time.RFC3339),
	}
}

func ConvertToVideo(dbVideo *dbEntity.Video) apiEntity.Video {
	return apiEntity.Video{
		ID:              dbVideo.ID,
		Title:           dbVideo.Title,
		Author:          dbVideo.Author,
		Topic:           dbVideo.Topic,
		VideoID:         dbVideo.VideoID,
		URL:             dbVideo.URL,
		ThumbnailURL:    dbVideo.ThumbnailURL,
		Duration:        dbVideo.Duration,
		TotalQuestions:  dbVideo.TotalQuestions,
		TotalFlashcards: dbVideo.TotalFlashcards,
		UserID:          dbVideo.UserID,
		CreatedAt:       dbVideo.CreatedAt.Format(time.RFC3339),
	}
}
