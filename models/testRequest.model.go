package models

import "gorm.io/gorm"

const (
	RequestStatusPending    = "pending"
	RequestStatusInProgress = "in_progress"
	RequestStatusAssigned   = "assigned"
	RequestStatusCompleted  = "completed"
)

// TestRequest is a student's request for a personalized aptitude test.
// Interests and qualification are copied from the profile at creation time
// and never re-derived, so later profile edits do not change the request.
type TestRequest struct {
	gorm.Model
	StudentID             uint   `json:"student_id" gorm:"index;not null"`
	Student               User   `json:"-" gorm:"foreignKey:StudentID"`
	InterestsSnapshot     string `json:"interests_snapshot" gorm:"default:''"`
	QualificationSnapshot string `json:"qualification_snapshot" gorm:"default:''"`
	Status                string `json:"status" gorm:"default:'pending'"` // pending, in_progress, assigned, completed
}
