package models

import (
	"time"

	"gorm.io/gorm"
)

// StudentAnswer holds one student's choice for one question. The composite
// unique index is the authoritative guard for upsert semantics: concurrent
// submissions for the same (question, student) pair serialize to a single
// row, last write wins.
type StudentAnswer struct {
	gorm.Model
	QuestionID  uint      `json:"question_id" gorm:"uniqueIndex:idx_answer_question_student;not null"`
	StudentID   uint      `json:"student_id" gorm:"uniqueIndex:idx_answer_question_student;not null"`
	OptionID    uint      `json:"option_id" gorm:"not null"`
	SubmittedAt time.Time `json:"submitted_at"`
}
