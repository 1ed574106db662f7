package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	apiEntity "github.com/brainfeed/brainfeed-be/internal/delivery/http/entity"
	dbEntity "github.com/brainfeed/brainfeed-be/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeContentRepository serves canned rows, no database involved.
type fakeContentRepository struct {
	books      []dbEntity.Book
	videos     []dbEntity.Video
	questions  []dbEntity.Question
	flashcards []dbEntity.Flashcard

	findQuestionsErr error
}

func (f *fakeContentRepository) CreateBook(db *gorm.DB, book *dbEntity.Book) error {
	f.books = append(f.books, *book)
	return nil
}

func (f *fakeContentRepository) FindBooksByUserID(db *gorm.DB, userID string) ([]dbEntity.Book, error) {
	return filterByUser(f.books, userID, func(b dbEntity.Book) string { return b.UserID }), nil
}

func (f *fakeContentRepository) CreateVideo(db *gorm.DB, video *dbEntity.Video) error {
	f.videos = append(f.videos, *video)
	return nil
}

func (f *fakeContentRepository) FindVideosByUserID(db *gorm.DB, userID string) ([]dbEntity.Video, error) {
	return filterByUser(f.videos, userID, func(v dbEntity.Video) string { return v.UserID }), nil
}

func (f *fakeContentRepository) CreateQuestions(db *gorm.DB, questions []dbEntity.Question) error {
	f.questions = append(f.questions, questions...)
	return nil
}

func (f *fakeContentRepository) FindQuestionsByUserID(db *gorm.DB, userID string) ([]dbEntity.Question, error) {
	if f.findQuestionsErr != nil {
		return nil, f.findQuestionsErr
	}
	return filterByUser(f.questions, userID, func(q dbEntity.Question) string { return q.UserID }), nil
}

func (f *fakeContentRepository) CreateFlashcards(db *gorm.DB, flashcards []dbEntity.Flashcard) error {
	f.flashcards = append(f.flashcards, flashcards...)
	return nil
}

func (f *fakeContentRepository) FindFlashcardsByUserID(db *gorm.DB, userID string) ([]dbEntity.Flashcard, error) {
	return filterByUser(f.flashcards, userID, func(fc dbEntity.Flashcard) string { return fc.UserID }), nil
}

func filterByUser[T any](rows []T, userID string, userOf func(T) string) []T {
	var out []T
	for _, row := range rows {
		if userOf(row) == userID {
			out = append(out, row)
		}
	}
	return out
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func questionRow(id, userID, correct string, options []string) dbEntity.Question {
	raw, _ := json.Marshal(options)
	return dbEntity.Question{
		ID:            id,
		ContentType:   "book",
		ContentID:     "book_test",
		QuestionType:  "mcq",
		QuestionText:  "Question " + id,
		Options:       string(raw),
		CorrectAnswer: correct,
		UserID:        userID,
	}
}

func flashcardRow(id, userID string) dbEntity.Flashcard {
	return dbEntity.Flashcard{
		ID:          id,
		ContentType: "book",
		ContentID:   "book_test",
		FrontText:   "Front " + id,
		BackText:    "Back " + id,
		UserID:      userID,
	}
}

func newTestEngine(repo *fakeContentRepository) SessionEngine {
	return NewSessionEngine(SessionEngineConfig{
		Repository: repo,
		Log:        testLogger(),
	})
}

func TestComposeFeedContainsEveryItemExactlyOnce(t *testing.T) {
	repo := &fakeContentRepository{}
	for i := 0; i < 5; i++ {
		repo.questions = append(repo.questions, questionRow(fmt.Sprintf("q_%d", i), "user-1", "Option A", []string{"Option A", "Option B"}))
	}
	for i := 0; i < 4; i++ {
		repo.flashcards = append(repo.flashcards, flashcardRow(fmt.Sprintf("f_%d", i), "user-1"))
	}

	engine := newTestEngine(repo)

	summary, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, summary.Empty)
	assert.Equal(t, 9, summary.Total)
	assert.Equal(t, 0, summary.Position)
	require.NotNil(t, summary.Current)

	// Walk the whole queue and collect ids: the shuffle must be a
	// permutation, never dropping or duplicating items.
	seen := make(map[string]int)
	for i := 0; i < summary.Total; i++ {
		item, err := engine.CurrentItem("user-1")
		require.NoError(t, err)
		seen[item.ID()]++
		_, err = engine.Advance("user-1")
		require.NoError(t, err)
	}

	assert.Len(t, seen, 9)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "item %s appeared %d times", id, count)
	}
}

func TestComposeFeedEmpty(t *testing.T) {
	engine := newTestEngine(&fakeContentRepository{})

	summary, err := engine.ComposeFeed(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrEmptyFeed)
	require.NotNil(t, summary)
	assert.True(t, summary.Empty)
	assert.Nil(t, summary.Current)

	// Session exists but is not ready.
	_, err = engine.CurrentItem("user-1")
	assert.ErrorIs(t, err, ErrEmptyFeed)
}

func TestComposeFeedSkipsInvalidQuestions(t *testing.T) {
	repo := &fakeContentRepository{}
	repo.questions = append(repo.questions,
		questionRow("q_good", "user-1", "Option A", []string{"Option A", "Option B"}),
		questionRow("q_bad_answer", "user-1", "Option Z", []string{"Option A", "Option B"}),
	)
	broken := questionRow("q_bad_json", "user-1", "Option A", []string{"Option A"})
	broken.Options = "not-json"
	repo.questions = append(repo.questions, broken)

	engine := newTestEngine(repo)

	summary, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, "q_good", summary.Current.ID())
}

func TestSubmitAnswerExactMatch(t *testing.T) {
	repo := &fakeContentRepository{}
	repo.questions = append(repo.questions, questionRow("q_1", "user-1", "Paris", []string{"Paris", "London"}))

	engine := newTestEngine(repo)
	_, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)

	// Near-miss strings never match: comparison is exact, no trimming or
	// case folding.
	outcome, err := engine.SubmitAnswer("user-1", "paris")
	require.NoError(t, err)
	assert.False(t, outcome.IsCorrect)
	assert.Equal(t, 0, outcome.Streak)
	assert.Equal(t, 0, outcome.XP)

	outcome, err = engine.SubmitAnswer("user-1", "Paris")
	require.NoError(t, err)
	assert.True(t, outcome.IsCorrect)
	assert.Equal(t, 1, outcome.Streak)
	assert.Equal(t, xpPerCorrectAnswer, outcome.XP)
}

func TestSubmitAnswerFlashcardRating(t *testing.T) {
	repo := &fakeContentRepository{}
	repo.flashcards = append(repo.flashcards, flashcardRow("f_1", "user-1"))

	engine := newTestEngine(repo)
	_, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)

	outcome, err := engine.SubmitAnswer("user-1", string(apiEntity.RatingHard))
	require.NoError(t, err)
	assert.False(t, outcome.IsCorrect)

	outcome, err = engine.SubmitAnswer("user-1", string(apiEntity.RatingEasy))
	require.NoError(t, err)
	assert.True(t, outcome.IsCorrect)
	assert.Equal(t, 1, outcome.Streak)
	assert.Equal(t, xpPerCorrectAnswer, outcome.XP)
}

func TestStreakAndXPProgression(t *testing.T) {
	repo := &fakeContentRepository{}
	for i := 0; i < 4; i++ {
		repo.questions = append(repo.questions, questionRow(fmt.Sprintf("q_%d", i), "user-1", "Yes", []string{"Yes", "No"}))
	}

	engine := newTestEngine(repo)
	_, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		outcome, err := engine.SubmitAnswer("user-1", "Yes")
		require.NoError(t, err)
		assert.True(t, outcome.IsCorrect)
		assert.Equal(t, i, outcome.Streak)
		assert.Equal(t, i*xpPerCorrectAnswer, outcome.XP)
	}

	// One wrong answer resets the streak but never deducts XP.
	outcome, err := engine.SubmitAnswer("user-1", "No")
	require.NoError(t, err)
	assert.False(t, outcome.IsCorrect)
	assert.Equal(t, 0, outcome.Streak)
	assert.Equal(t, 3*xpPerCorrectAnswer, outcome.XP)
}

func TestAdvanceWrapsAround(t *testing.T) {
	repo := &fakeContentRepository{}
	for i := 0; i < 3; i++ {
		repo.questions = append(repo.questions, questionRow(fmt.Sprintf("q_%d", i), "user-1", "A", []string{"A", "B"}))
	}

	engine := newTestEngine(repo)
	_, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)

	stats, err := engine.Advance("user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Position)

	stats, err = engine.Advance("user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Position)

	// The feed is circular: past the last item we are back at the start.
	stats, err = engine.Advance("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Position)

	first, err := engine.CurrentItem("user-1")
	require.NoError(t, err)
	assert.NotNil(t, first)
}

func TestSubmitAnswerWrapsPosition(t *testing.T) {
	repo := &fakeContentRepository{}
	repo.questions = append(repo.questions,
		questionRow("q_0", "user-1", "A", []string{"A", "B"}),
		questionRow("q_1", "user-1", "A", []string{"A", "B"}),
	)

	engine := newTestEngine(repo)
	_, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)

	outcome, err := engine.SubmitAnswer("user-1", "A")
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Position)

	outcome, err = engine.SubmitAnswer("user-1", "A")
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Position)
	assert.Equal(t, 2, outcome.Total)
}

func TestNoSessionErrors(t *testing.T) {
	engine := newTestEngine(&fakeContentRepository{})

	_, err := engine.CurrentItem("ghost")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = engine.SubmitAnswer("ghost", "anything")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = engine.Advance("ghost")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = engine.Stats("ghost")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestReshufflePreservesCounters(t *testing.T) {
	repo := &fakeContentRepository{}
	for i := 0; i < 3; i++ {
		repo.questions = append(repo.questions, questionRow(fmt.Sprintf("q_%d", i), "user-1", "A", []string{"A", "B"}))
	}

	engine := newTestEngine(repo)
	_, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = engine.SubmitAnswer("user-1", "A")
	require.NoError(t, err)
	_, err = engine.SubmitAnswer("user-1", "A")
	require.NoError(t, err)

	summary, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Position, "reshuffle resets position")
	assert.Equal(t, 2, summary.Streak, "reshuffle keeps streak")
	assert.Equal(t, 2*xpPerCorrectAnswer, summary.XP, "reshuffle keeps xp")
}

func TestEndSessionDiscardsState(t *testing.T) {
	repo := &fakeContentRepository{}
	repo.questions = append(repo.questions, questionRow("q_0", "user-1", "A", []string{"A", "B"}))

	engine := newTestEngine(repo)
	_, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)
	_, err = engine.SubmitAnswer("user-1", "A")
	require.NoError(t, err)

	engine.EndSession("user-1")

	_, err = engine.Stats("user-1")
	assert.ErrorIs(t, err, ErrNoSession)

	// Counters start from zero after a fresh compose; items themselves
	// survive because they live in the repository.
	summary, err := engine.ComposeFeed(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Streak)
	assert.Equal(t, 0, summary.XP)
	assert.Equal(t, 1, summary.Total)
}

func TestSessionsAreScopedPerUser(t *testing.T) {
	repo := &fakeContentRepository{}
	repo.questions = append(repo.questions,
		questionRow("q_a", "alice", "A", []string{"A", "B"}),
		questionRow("q_b", "bob", "A", []string{"A", "B"}),
	)

	engine := newTestEngine(repo)

	summaryA, err := engine.ComposeFeed(context.Background(), "alice")
	require.NoError(t, err)
	summaryB, err := engine.ComposeFeed(context.Background(), "bob")
	require.NoError(t, err)

	assert.Equal(t, 1, summaryA.Total)
	assert.Equal(t, 1, summaryB.Total)
	assert.Equal(t, "q_a", summaryA.Current.ID())
	assert.Equal(t, "q_b", summaryB.Current.ID())

	_, err = engine.SubmitAnswer("alice", "A")
	require.NoError(t, err)

	statsB, err := engine.Stats("bob")
	require.NoError(t, err)
	assert.Equal(t, 0, statsB.Streak)
	assert.Equal(t, 0, statsB.XP)
}

func TestComposeFeedRepositoryError(t *testing.T) {
	repo := &fakeContentRepository{findQuestionsErr: fmt.Errorf("db down")}
	engine := newTestEngine(repo)

	_, err := engine.ComposeFeed(context.Background(), "user-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyFeed)
}
