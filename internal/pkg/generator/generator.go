package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brainfeed/brainfeed-be/internal/pkg/llm"
	"github.com/sirupsen/logrus"
)

const (
	// Jumlah item untuk satu buku (fixed batch size)
	BookQuestionCount  = 20
	BookFlashcardCount = 20
)

// ItemCountForDuration - 1 soal + 1 flashcard per 3 menit video, minimal 1
func ItemCountForDuration(durationSeconds int) int {
	count := durationSeconds / 180
	if count < 1 {
		count = 1
	}
	return count
}

type BookMetadata struct {
	Description string   `json:"description"`
	Themes      []string `json:"themes"`
	Audience    string   `json:"audience"`
	Takeaways   []string `json:"takeaways"`
}

type GeneratedQuestion struct {
	QuestionType  string   `json:"questionType"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type GeneratedFlashcard struct {
	FrontText string `json:"frontText"`
	BackText  string `json:"backText"`
}

// Batch adalah satu hasil generate: soal + flashcard dengan jumlah sama-sama
// sesuai permintaan.
type Batch struct {
	Questions  []GeneratedQuestion
	Flashcards []GeneratedFlashcard
}

type BookContent struct {
	Metadata BookMetadata
	Batch
}

type (
	// ContentGenerator adalah kolaborator eksternal: prompt-and-parse ke
	// chat-completion API. Error dari sini TIDAK boleh sampai ke end user;
	// caller wajib substitusi placeholder batch (lihat Fallback*).
	ContentGenerator interface {
		GenerateForBook(ctx context.Context, title, author, topic string) (*BookContent, error)
		GenerateForVideo(ctx context.Context, transcript, topic string, itemCount int) (*Batch, error)
	}

	llmGenerator struct {
		client llm.Client
		log    *logrus.Logger
	}
)

func NewLLMGenerator(client llm.Client, log *logrus.Logger) ContentGenerator {
	return &llmGenerator{client: client, log: log}
}

func (g *llmGenerator) GenerateForBook(ctx context.Context, title, author, topic string) (*BookContent, error) {
	if g.client == nil {
		return nil, fmt.Errorf("llm client not configured")
	}

	content := &BookContent{}

	// Metadata degrades independently: a bad metadata parse should not cost
	// the whole batch.
	metaText, err := g.client.GenerateText(ctx, bookMetadataPrompt(title, author))
	if err != nil {
		return nil, fmt.Errorf("generate book metadata: %w", err)
	}
	if meta, err := parseMetadata(metaText); err != nil {
		g.log.Warnf("Book metadata parse failed, using fallback: %v", err)
		content.Metadata = FallbackBookMetadata(title, author)
	} else {
		content.Metadata = meta
	}

	questionsText, err := g.client.GenerateText(ctx, bookQuestionsPrompt(title, author))
	if err != nil {
		return nil, fmt.Errorf("generate book questions: %w", err)
	}
	questions, err := parseQuestions(questionsText)
	if err != nil {
		return nil, fmt.Errorf("parse book questions: %w", err)
	}

	flashcardsText, err := g.client.GenerateText(ctx, bookFlashcardsPrompt(title, author))
	if err != nil {
		return nil, fmt.Errorf("generate book flashcards: %w", err)
	}
	flashcards, err := parseFlashcards(flashcardsText)
	if err != nil {
		return nil, fmt.Errorf("parse book flashcards: %w", err)
	}

	content.Questions = questions
	content.Flashcards = flashcards
	return content, nil
}

func (g *llmGenerator) GenerateForVideo(ctx context.Context, transcript, topic string, itemCount int) (*Batch, error) {
	if g.client == nil {
		return nil, fmt.Errorf("llm client not configured")
	}
	if itemCount < 1 {
		itemCount = 1
	}

	questionsText, err := g.client.GenerateText(ctx, videoQuestionsPrompt(transcript, topic, itemCount))
	if err != nil {
		return nil, fmt.Errorf("generate video questions: %w", err)
	}
	questions, err := parseQuestions(questionsText)
	if err != nil {
		return nil, fmt.Errorf("parse video questions: %w", err)
	}

	flashcardsText, err := g.client.GenerateText(ctx, videoFlashcardsPrompt(transcript, topic, itemCount))
	if err != nil {
		return nil, fmt.Errorf("generate video flashcards: %w", err)
	}
	flashcards, err := parseFlashcards(flashcardsText)
	if err != nil {
		return nil, fmt.Errorf("parse video flashcards: %w", err)
	}

	return &Batch{Questions: questions, Flashcards: flashcards}, nil
}

// stripCodeFence removes markdown code fences some models wrap JSON in.
func stripCodeFence(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func parseQuestions(text string) ([]GeneratedQuestion, error) {
	clean := stripCodeFence(text)

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("AI output is not valid json: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("AI returned no questions")
	}
	return questions, nil
}

func parseFlashcards(text string) ([]GeneratedFlashcard, error) {
	clean := stripCodeFence(text)

	var flashcards []GeneratedFlashcard
	if err := json.Unmarshal([]byte(clean), &flashcards); err != nil {
		return nil, fmt.Errorf("AI output is not valid json: %w", err)
	}
	if len(flashcards) == 0 {
		return nil, fmt.Errorf("AI returned no flashcards")
	}
	return flashcards, nil
}

func parseMetadata(text string) (BookMetadata, error) {
	clean := stripCodeFence(text)

	var meta BookMetadata
	if err := json.Unmarshal([]byte(clean), &meta); err != nil {
		return BookMetadata{}, fmt.Errorf("AI output is not valid json: %w", err)
	}
	return meta, nil
}
