package usecase

import (
	"context"
	"fmt"
	"time"

	apiEntity "github.com/brainfeed/brainfeed-be/internal/delivery/http/entity"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/repository"
	dbEntity "github.com/brainfeed/brainfeed-be/internal/entity"
	"github.com/brainfeed/brainfeed-be/internal/pkg/generator"
	"github.com/brainfeed/brainfeed-be/internal/pkg/mapper"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ContentUsecase interface {
	AddBook(ctx context.Context, req apiEntity.AddBookRequest) (*apiEntity.AddBookResponse, error)
	AddVideo(ctx context.Context, req apiEntity.AddVideoRequest) (*apiEntity.AddVideoResponse, error)
	ListBooks(ctx context.Context, userID string) ([]apiEntity.Book, error)
	ListVideos(ctx context.Context, userID string) ([]apiEntity.Video, error)
}

type ContentUsecaseConfig struct {
	DB         *gorm.DB
	Generator  generator.ContentGenerator
	Repository repository.ContentRepository
	Log        *logrus.Logger
}

type contentUsecase struct {
	cfg ContentUsecaseConfig
}

func NewContentUsecase(cfg ContentUsecaseConfig) ContentUsecase {
	return &contentUsecase{cfg: cfg}
}

func (u *contentUsecase) AddBook(ctx context.Context, req apiEntity.AddBookRequest) (*apiEntity.AddBookResponse, error) {
	meta := generator.FallbackBookMetadata(req.Title, req.Author)
	var batch *generator.Batch

	content, err := u.cfg.Generator.GenerateForBook(ctx, req.Title, req.Author, req.Topic)
	if err != nil {
		// Kegagalan generator tidak boleh sampai ke user: substitusi
		// placeholder batch dengan jumlah yang sama.
		u.cfg.Log.Warnf("Book generation failed for %q, using placeholder batch: %v", req.Title, err)
		batch = generator.FallbackBatch(req.Title, req.Author, req.Topic, generator.BookQuestionCount, generator.BookFlashcardCount)
	} else {
		meta = content.Metadata
		batch = &content.Batch
		if !batch.IsWellFormed() {
			u.cfg.Log.Warnf("Book generation for %q returned malformed batch, replacing entirely", req.Title)
			batch = generator.FallbackBatch(req.Title, req.Author, req.Topic, generator.BookQuestionCount, generator.BookFlashcardCount)
		}
	}

	now := time.Now()
	book := dbEntity.Book{
		ID:              fmt.Sprintf("book_%s", uuid.NewString()),
		Title:           req.Title,
		Author:          req.Author,
		Topic:           req.Topic,
		Description:     meta.Description,
		TotalQuestions:  len(batch.Questions),
		TotalFlashcards: len(batch.Flashcards),
		UserID:          req.UserID,
		CreatedAt:       now,
	}

	questions, flashcards, err := u.storeBatch(ctx, batch, storeBatchParams{
		contentType:   apiEntity.ContentTypeBook,
		contentID:     book.ID,
		contentTitle:  book.Title,
		contentAuthor: book.Author,
		topic:         book.Topic,
		userID:        req.UserID,
		createdAt:     now,
	})
	if err != nil {
		return nil, err
	}

	if err := u.cfg.Repository.CreateBook(u.dbWithContext(ctx), &book); err != nil {
		return nil, err
	}

	return &apiEntity.AddBookResponse{
		Book:       mapper.ConvertToBook(&book),
		Questions:  questions,
		Flashcards: flashcards,
	}, nil
}

func (u *contentUsecase) AddVideo(ctx context.Context, req apiEntity.AddVideoRequest) (*apiEntity.AddVideoResponse, error) {
	// Transcript retrieval disimulasikan; metadata video memakai default
	// yang sama dengan sumber aslinya.
	const (
		defaultTitle    = "YouTube Video"
		defaultAuthor   = "Unknown Creator"
		defaultDuration = 600 // seconds
	)

	transcript := fmt.Sprintf(
		"This is a simulated transcript for the video %q. The video covers important concepts related to %s. "+
			"Key points include practical strategies, actionable insights, and expert advice.",
		defaultTitle, req.Topic,
	)

	itemCount := generator.ItemCountForDuration(defaultDuration)

	batch, err := u.cfg.Generator.GenerateForVideo(ctx, transcript, req.Topic, itemCount)
	if err != nil {
		u.cfg.Log.Warnf("Video generation failed for %q, using placeholder batch: %v", req.VideoID, err)
		batch = generator.FallbackBatch(defaultTitle, defaultAuthor, req.Topic, itemCount, itemCount)
	} else if !batch.IsWellFormed() {
		u.cfg.Log.Warnf("Video generation for %q returned malformed batch, replacing entirely", req.VideoID)
		batch = generator.FallbackBatch(defaultTitle, defaultAuthor, req.Topic, itemCount, itemCount)
	}

	now := time.Now()
	video := dbEntity.Video{
		ID:              fmt.Sprintf("video_%s", uuid.NewString()),
		Title:           defaultTitle,
		Author:          defaultAuthor,
		Topic:           req.Topic,
		VideoID:         req.VideoID,
		URL:             req.URL,
		ThumbnailURL:    fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", req.VideoID),
		Duration:        defaultDuration,
		TotalQuestions:  len(batch.Questions),
		TotalFlashcards: len(batch.Flashcards),
		UserID:          req.UserID,
		CreatedAt:       now,
	}

	questions, flashcards, err := u.storeBatch(ctx, batch, storeBatchParams{
		contentType:   apiEntity.ContentTypeVideo,
		contentID:     video.ID,
		contentTitle:  video.Title,
		contentAuthor: video.Author,
		topic:         video.Topic,
		userID:        req.UserID,
		createdAt:     now,
	})
	if err != nil {
		return nil, err
	}

	if err := u.cfg.Repository.CreateVideo(u.dbWithContext(ctx), &video); err != nil {
		return nil, err
	}

	return &apiEntity.AddVideoResponse{
		Video:      mapper.ConvertToVideo(&video),
		Questions:  questions,
		Flashcards: flashcards,
	}, nil
}

func (u *contentUsecase) ListBooks(ctx context.Context, userID string) ([]apiEntity.Book, error) {
	dbBooks, err := u.cfg.Repository.FindBooksByUserID(u.dbWithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	books := make([]apiEntity.Book, 0, len(dbBooks))
	for i := range dbBooks {
		books = append(books, mapper.ConvertToBook(&dbBooks[i]))
	}
	return books, nil
}

func (u *contentUsecase) ListVideos(ctx context.Context, userID string) ([]apiEntity.Video, error) {
	dbVideos, err := u.cfg.Repository.FindVideosByUserID(u.dbWithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	videos := make([]apiEntity.Video, 0, len(dbVideos))
	for i := range dbVideos {
		videos = append(videos, mapper.ConvertToVideo(&dbVideos[i]))
	}
	return videos, nil
}

type storeBatchParams struct {
	contentType   apiEntity.ContentType
	contentID     string
	contentTitle  string
	contentAuthor string
	topic         string
	userID        string
	createdAt     time.Time
}

// storeBatch persists an admitted batch and returns the API representation.
// The batch must already be well-formed (or be a placeholder batch).
func (u *contentUsecase) storeBatch(ctx context.Context, batch *generator.Batch, p storeBatchParams) ([]apiEntity.Question, []apiEntity.Flashcard, error) {
	questionRows := make([]dbEntity.Question, 0, len(batch.Questions))
	questions := make([]apiEntity.Question, 0, len(batch.Questions))
	for _, gq := range batch.Questions {
		q := apiEntity.Question{
			ID:            fmt.Sprintf("q_%s", uuid.NewString()),
			ContentType:   p.contentType,
			ContentID:     p.contentID,
			ContentTitle:  p.contentTitle,
			ContentAuthor: p.contentAuthor,
			Topic:         p.topic,
			QuestionType:  apiEntity.QuestionType(gq.QuestionType),
			QuestionText:  gq.QuestionText,
			Options:       gq.Options,
			CorrectAnswer: gq.CorrectAnswer,
			Explanation:   gq.Explanation,
			UserID:        p.userID,
			CreatedAt:     p.createdAt.Format(time.RFC3339),
		}
		row, err := mapper.ConvertToQuestionRow(&q)
		if err != nil {
			return nil, nil, err
		}
		questionRows = append(questionRows, row)
		questions = append(questions, q)
	}

	flashcardRows := make([]dbEntity.Flashcard, 0, len(batch.Flashcards))
	flashcards := make([]apiEntity.Flashcard, 0, len(batch.Flashcards))
	for _, gf := range batch.Flashcards {
		f := apiEntity.Flashcard{
			ID:            fmt.Sprintf("f_%s", uuid.NewString()),
			ContentType:   p.contentType,
			ContentID:     p.contentID,
			ContentTitle:  p.contentTitle,
			ContentAuthor: p.contentAuthor,
			Topic:         p.topic,
			FrontText:     gf.FrontText,
			BackText:      gf.BackText,
			UserID:        p.userID,
			CreatedAt:     p.createdAt.Format(time.RFC3339),
		}
		flashcardRows = append(flashcardRows, mapper.ConvertToFlashcardRow(&f))
		flashcards = append(flashcards, f)
	}

	if err := u.cfg.Repository.CreateQuestions(u.dbWithContext(ctx), questionRows); err != nil {
		return nil, nil, err
	}
	if err := u.cfg.Repository.CreateFlashcards(u.dbWithContext(ctx), flashcardRows); err != nil {
		return nil, nil, err
	}

	return questions, flashcards, nil
}

func (u *contentUsecase) dbWithContext(ctx context.Context) *gorm.DB {
	if u.cfg.DB == nil {
		return nil
	}
	return u.cfg.DB.WithContext(ctx)
}
