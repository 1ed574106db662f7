package generator

import "fmt"

// Deterministic placeholder content substituted when the generator fails or
// returns a malformed batch. Counts always match the request so stored totals
// stay consistent.

func FallbackBookMetadata(title, author string) BookMetadata {
	return BookMetadata{
		Description: fmt.Sprintf("A comprehensive guide exploring the key concepts from %s by %s.", title, author),
		Themes:      []string{"Personal Development", "Self-Improvement"},
		Audience:    "General readers interested in personal growth",
		Takeaways:   []string{"Key insights and practical applications"},
	}
}

func FallbackQuestions(title, author string, count int) []GeneratedQuestion {
	questions := make([]GeneratedQuestion, count)
	for i := range questions {
		questions[i] = GeneratedQuestion{
			QuestionType:  "mcq",
			QuestionText:  fmt.Sprintf("What is a key concept from %s? (Question %d)", title, i+1),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
			Explanation:   fmt.Sprintf("This relates to the main themes discussed in %s by %s.", title, author),
		}
	}
	return questions
}

func FallbackFlashcards(title, author, topic string, count int) []GeneratedFlashcard {
	flashcards := make([]GeneratedFlashcard, count)
	for i := range flashcards {
		flashcards[i] = GeneratedFlashcard{
			FrontText: fmt.Sprintf("Key concept %d from %s?", i+1, title),
			BackText:  fmt.Sprintf("This is an important insight from %s by %s that relates to %s.", title, author, topic),
		}
	}
	return flashcards
}

// FallbackBatch builds a full placeholder batch with matching counts.
func FallbackBatch(title, author, topic string, questionCount, flashcardCount int) *Batch {
	return &Batch{
		Questions:  FallbackQuestions(title, author, questionCount),
		Flashcards: FallbackFlashcards(title, author, topic, flashcardCount),
	}
}
