package generator

import "fmt"

func bookMetadataPrompt(title, author string) string {
	return fmt.Sprintf(`You are a book expert. For the book "%s" by %s, provide:
1. A brief description (2-3 sentences)
2. Key themes and concepts
3. Target audience
4. Main takeaways

Format as JSON with keys: description, themes, audience, takeaways.
IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.`, title, author)
}

func bookQuestionsPrompt(title, author string) string {
	return fmt.Sprintf(`Based on the book "%s" by %s, create exactly %d multiple-choice questions that test understanding of key concepts. Each question should have 4 options with one correct answer and a brief explanation.

Format as JSON array with objects containing:
- questionType: "mcq"
- questionText: string
- options: array of 4 strings
- correctAnswer: string (exact match from options)
- explanation: string

Focus on practical applications, key insights, and important concepts from the book.
IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.`, title, author, BookQuestionCount)
}

func bookFlashcardsPrompt(title, author string) string {
	return fmt.Sprintf(`Based on the book "%s" by %s, create exactly %d flashcards for spaced repetition learning. Each flashcard should have a clear question/prompt on the front and a comprehensive answer on the back.

Format as JSON array with objects containing:
- frontText: string (question or key term)
- backText: string (detailed answer or explanation)

Focus on key concepts, definitions, frameworks, and actionable insights from the book.
IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.`, title, author, BookFlashcardCount)
}

func videoQuestionsPrompt(transcript, topic string, count int) string {
	return fmt.Sprintf(`Based on this video transcript about %s:

"%s"

Create exactly %d multiple-choice questions that test understanding of the key concepts. Each question should have 4 options with one correct answer and a brief explanation.

Format as JSON array with objects containing:
- questionType: "mcq"
- questionText: string
- options: array of 4 strings
- correctAnswer: string (exact match from options)
- explanation: string

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.`, topic, transcript, count)
}

func videoFlashcardsPrompt(transcript, topic string, count int) string {
	return fmt.Sprintf(`Based on this video transcript about %s:

"%s"

Create exactly %d flashcards for spaced repetition learning. Each flashcard should have a clear question/prompt on the front and a comprehensive answer on the back.

Format as JSON array with objects containing:
- frontText: string (question or key term)
- backText: string (detailed answer or explanation)

IMPORTANT: Return ONLY valid JSON, NO markdown, NO code blocks.`, topic, transcript, count)
}
