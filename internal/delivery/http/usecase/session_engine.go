package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/brainfeed/brainfeed-be/internal/delivery/http/entity"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/repository"
	"github.com/brainfeed/brainfeed-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SessionEngine interface {
	// ComposeFeed menyusun (atau menyusun ulang) queue untuk user:
	// permutasi uniform dari seluruh item miliknya. ErrEmptyFeed jika
	// user belum punya item.
	ComposeFeed(ctx context.Context, userID string) (*entity.FeedSummary, error)
	CurrentItem(userID string) (*entity.FeedItem, error)
	SubmitAnswer(userID string, response string) (*entity.AnswerOutcome, error)
	Advance(userID string) (*entity.SessionStats, error)
	Stats(userID string) (*entity.SessionStats, error)
	EndSession(userID string)
}

type SessionEngineConfig struct {
	DB         *gorm.DB
	Repository repository.ContentRepository
	Log        *logrus.Logger
}

// sessionState hidup di memori saja, per user, tidak pernah dipersist.
type sessionState struct {
	queue    []entity.FeedItem
	position int
	streak   int
	xp       int
}

type sessionEngine struct {
	cfg SessionEngineConfig
	rnd *rand.Rand

	// mu melindungi sessions dan rnd; satu SessionState tetap dimutasi
	// oleh satu aktor interaktif saja.
	mu       sync.Mutex
	sessions map[string]*sessionState
}

func NewSessionEngine(cfg SessionEngineConfig) SessionEngine {
	return &sessionEngine{
		cfg:      cfg,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*sessionState),
	}
}

const xpPerCorrectAnswer = 10

func (e *sessionEngine) ComposeFeed(ctx context.Context, userID string) (*entity.FeedSummary, error) {
	db := e.cfg.DB
	if db != nil {
		db = db.WithContext(ctx)
	}

	dbQuestions, err := e.cfg.Repository.FindQuestionsByUserID(db, userID)
	if err != nil {
		return nil, err
	}
	dbFlashcards, err := e.cfg.Repository.FindFlashcardsByUserID(db, userID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.FeedItem, 0, len(dbQuestions)+len(dbFlashcards))
	for i := range dbQuestions {
		q, err := mapper.ConvertToQuestion(&dbQuestions[i])
		if err != nil {
			e.cfg.Log.Warnf("Skipping question %s: unreadable options: %v", dbQuestions[i].ID, err)
			continue
		}
		// Soal yang melanggar invariant correctAnswer ∈ options ditolak
		// sebelum masuk sesi.
		if !answerInOptions(q.CorrectAnswer, q.Options) {
			e.cfg.Log.Warnf("Skipping question %s: correct answer not among options", q.ID)
			continue
		}
		items = append(items, entity.FeedItem{Type: entity.FeedItemQuestion, Question: &q})
	}
	for i := range dbFlashcards {
		f := mapper.ConvertToFlashcard(&dbFlashcards[i])
		items = append(items, entity.FeedItem{Type: entity.FeedItemFlashcard, Flashcard: &f})
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[userID]
	if !ok {
		session = &sessionState{}
		e.sessions[userID] = session
	}

	// Fisher-Yates; streak/xp bertahan saat shuffle ulang, queue dan posisi
	// direset.
	e.rnd.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	session.queue = items
	session.position = 0

	if len(items) == 0 {
		return &entity.FeedSummary{Empty: true}, ErrEmptyFeed
	}

	current := session.queue[0]
	return &entity.FeedSummary{
		Total:    len(session.queue),
		Position: session.position,
		Streak:   session.streak,
		XP:       session.xp,
		Current:  &current,
	}, nil
}

func (e *sessionEngine) CurrentItem(userID string) (*entity.FeedItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := e.readySession(userID)
	if err != nil {
		return nil, err
	}
	if session.position >= len(session.queue) {
		return nil, ErrOutOfRange
	}

	item := session.queue[session.position]
	return &item, nil
}

func (e *sessionEngine) SubmitAnswer(userID string, response string) (*entity.AnswerOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := e.readySession(userID)
	if err != nil {
		return nil, err
	}
	if session.position >= len(session.queue) {
		return nil, ErrOutOfRange
	}

	item := session.queue[session.position]

	var isCorrect bool
	switch item.Type {
	case entity.FeedItemQuestion:
		// Exact string equality, tanpa normalisasi.
		isCorrect = response == item.Question.CorrectAnswer
	case entity.FeedItemFlashcard:
		// Self-reported rating: easy dihitung benar, selain itu salah.
		isCorrect = entity.Rating(response) == entity.RatingEasy
	}

	if isCorrect {
		session.streak++
		session.xp += xpPerCorrectAnswer
	} else {
		session.streak = 0
	}

	// Feed bersifat circular: setelah item terakhir kembali ke awal.
	session.position = (session.position + 1) % len(session.queue)

	return &entity.AnswerOutcome{
		IsCorrect: isCorrect,
		Streak:    session.streak,
		XP:        session.xp,
		Position:  session.position,
		Total:     len(session.queue),
	}, nil
}

func (e *sessionEngine) Advance(userID string) (*entity.SessionStats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := e.readySession(userID)
	if err != nil {
		return nil, err
	}

	session.position = (session.position + 1) % len(session.queue)
	return statsOf(session), nil
}

func (e *sessionEngine) Stats(userID string) (*entity.SessionStats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	return statsOf(session), nil
}

// EndSession membuang SessionState; hanya LearningItem di repository yang
// bertahan.
func (e *sessionEngine) EndSession(userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, userID)
}

// readySession returns the session when it is in the Ready state.
func (e *sessionEngine) readySession(userID string) (*sessionState, error) {
	session, ok := e.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	if len(session.queue) == 0 {
		return nil, ErrEmptyFeed
	}
	return session, nil
}

func statsOf(session *sessionState) *entity.SessionStats {
	return &entity.SessionStats{
		Streak:   session.streak,
		XP:       session.xp,
		Position: session.position,
		Total:    len(session.queue),
	}
}

func answerInOptions(answer string, options []string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
