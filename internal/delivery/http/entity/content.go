package entity

type ContentType string

const (
	ContentTypeBook  ContentType = "book"
	ContentTypeVideo ContentType = "video"
)

type QuestionType string

const (
	QuestionTypeMCQ          QuestionType = "mcq"
	QuestionTypeTrueFalse    QuestionType = "true_false"
	QuestionTypeMatchPairs   QuestionType = "match_pairs"
	QuestionTypeArrangeSteps QuestionType = "arrange_steps"
	QuestionTypeImageBased   QuestionType = "image_based"
)

// Rating adalah penilaian diri user untuk flashcard
type Rating string

const (
	RatingEasy Rating = "easy"
	RatingHard Rating = "hard"
)

type Question struct {
	ID            string       `json:"id"`
	ContentType   ContentType  `json:"content_type"`
	ContentID     string       `json:"content_id"`
	ContentTitle  string       `json:"content_title"`
	ContentAuthor string       `json:"content_author"`
	Topic         string       `json:"topic"`
	QuestionType  QuestionType `json:"question_type"`
	QuestionText  string       `json:"question_text"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation"`
	UserID        string       `json:"user_id"`
	CreatedAt     string       `json:"created_at"`
}

type Flashcard struct {
	ID            string      `json:"id"`
	ContentType   ContentType `json:"content_type"`
	ContentID     string      `json:"content_id"`
	ContentTitle  string      `json:"content_title"`
	ContentAuthor string      `json:"content_author"`
	Topic         string      `json:"topic"`
	FrontText     string      `json:"front_text"`
	BackText      string      `json:"back_text"`
	UserID        string      `json:"user_id"`
	CreatedAt     string      `json:"created_at"`
}

type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Topic           string `json:"topic"`
	Description     string `json:"description"`
	CoverURL        string `json:"cover_url"`
	TotalQuestions  int    `json:"total_questions"`
	TotalFlashcards int    `json:"total_flashcards"`
	UserID          string `json:"user_id"`
	CreatedAt       string `json:"created_at"`
}

type Video struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Topic           string `json:"topic"`
	VideoID         string `json:"video_id"`
	URL             string `json:"url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	Duration        int    `json:"duration"`
	TotalQuestions  int    `json:"total_questions"`
	TotalFlashcards int    `json:"total_flashcards"`
	UserID          string `json:"user_id"`
	CreatedAt       string `json:"created_at"`
}

type FeedItemType string

const (
	FeedItemQuestion  FeedItemType = "question"
	FeedItemFlashcard FeedItemType = "flashcard"
)

// FeedItem adalah tagged union: tepat satu dari Question/Flashcard terisi
// sesuai Type.
type FeedItem struct {
	Type      FeedItemType `json:"type"`
	Question  *Question    `json:"question,omitempty"`
	Flashcard *Flashcard   `json:"flashcard,omitempty"`
}

// ID returns the id of the wrapped item.
func (i FeedItem) ID() string {
	if i.Type == FeedItemQuestion && i.Question != nil {
		return i.Question.ID
	}
	if i.Flashcard != nil {
		return i.Flashcard.ID
	}
	return ""
}

// Request untuk menambah buku
type AddBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Topic  string `json:"topic" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

// Request untuk menambah video
type AddVideoRequest struct {
	URL     string `json:"url" validate:"required"`
	VideoID string `json:"video_id" validate:"required"`
	Topic   string `json:"topic" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
}

type AddBookResponse struct {
	Book       Book        `json:"book"`
	Questions  []Question  `json:"questions"`
	Flashcards []Flashcard `json:"flashcards"`
}

type AddVideoResponse struct {
	Video      Video       `json:"video"`
	Questions  []Question  `json:"questions"`
	Flashcards []Flashcard `json:"flashcards"`
}

// Request untuk submit jawaban / rating dari feed
type SubmitResponseRequest struct {
	Response string `json:"response" validate:"required"`
}

// Outcome hasil satu jawaban
type AnswerOutcome struct {
	IsCorrect bool `json:"is_correct"`
	Streak    int  `json:"streak"`
	XP        int  `json:"xp"`
	Position  int  `json:"position"`
	Total     int  `json:"total"`
}

// Ringkasan feed yang baru disusun
type FeedSummary struct {
	Empty    bool      `json:"empty"`
	Total    int       `json:"total"`
	Position int       `json:"position"`
	Streak   int       `json:"streak"`
	XP       int       `json:"xp"`
	Current  *FeedItem `json:"current,omitempty"`
}

// Statistik sesi untuk halaman profile
type SessionStats struct {
	Streak   int `json:"streak"`
	XP       int `json:"xp"`
	Position int `json:"position"`
	Total    int `json:"total"`
}
