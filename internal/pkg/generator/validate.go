package generator

import "strings"

// IsValidQuestion checks the admission invariant: correctAnswer must be an
// exact member of options and there must be at least 2 options.
func IsValidQuestion(q GeneratedQuestion) bool {
	if strings.TrimSpace(q.QuestionText) == "" {
		return false
	}
	if len(q.Options) < 2 {
		return false
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return true
		}
	}
	return false
}

func IsValidFlashcard(f GeneratedFlashcard) bool {
	return strings.TrimSpace(f.FrontText) != "" && strings.TrimSpace(f.BackText) != ""
}

// IsWellFormed reports whether the whole batch can be admitted. One bad item
// rejects the batch: admission is all-or-nothing, never partial.
func (b *Batch) IsWellFormed() bool {
	if b == nil {
		return false
	}
	for _, q := range b.Questions {
		if !IsValidQuestion(q) {
			return false
		}
	}
	for _, f := range b.Flashcards {
		if !IsValidFlashcard(f) {
			return false
		}
	}
	return true
}
