package domain

import "time"

// Session is one run of the question wizard for a single MVP idea.
type Session struct {
	ID          string
	ProjectName string
	Experience  ExperienceLevel
	Status      SessionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// AnswerEntry is one recorded question/answer pair. Entries are appended in
// Seq order and never edited; a re-answered question gets a new entry.
type AnswerEntry struct {
	ID           string       `json:"id"`
	SessionID    string       `json:"session_id"`
	Seq          int          `json:"seq"`
	QuestionID   string       `json:"question_id"`
	QuestionText string       `json:"question_text"`
	QuestionType QuestionType `json:"question_type"`
	AnswerText   string       `json:"answer_text"`
	AnsweredAt   time.Time    `json:"answered_at"`
}
