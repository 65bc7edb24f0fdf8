package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
	ProgressSkipped    = "skipped"
)

type ResourceCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"default:''"` // Icon name or emoji
}

// CareerResource is a learning asset. A nil RecommendationID marks a general
// resource visible to every student.
type CareerResource struct {
	gorm.Model
	RecommendationID *uint    `json:"recommendation_id" gorm:"index"`
	CategoryID       *uint    `json:"category_id" gorm:"index"`
	Title            string   `json:"title" gorm:"not null"`
	Description      string   `json:"description" gorm:"type:text"`
	ResourceType     string   `json:"resource_type" gorm:"default:'article'"` // article, video, course, book, certification, tool, community, report, other
	URL              string   `json:"url" gorm:"default:''"`
	FilePath         string   `json:"file_path" gorm:"default:''"`
	DifficultyLevel  string   `json:"difficulty_level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	IsFree           bool     `json:"is_free" gorm:"default:true"`
	Cost             *float64 `json:"cost"`
	AdminID          *uint    `json:"admin_id"`
	OrderIndex       int      `json:"order" gorm:"default:0"`
	IsActive         bool     `json:"is_active" gorm:"default:true"`
}

// StudentResourceProgress is one student's private state against one
// resource. StartedAt and CompletedAt are set the first time the matching
// status is reached and never reset afterwards.
type StudentResourceProgress struct {
	gorm.Model
	StudentID   uint       `json:"student_id" gorm:"uniqueIndex:idx_progress_student_resource;not null"`
	ResourceID  uint       `json:"resource_id" gorm:"uniqueIndex:idx_progress_student_resource;not null"`
	Status      string     `json:"status" gorm:"default:'not_started'"` // not_started, in_progress, completed, skipped
	Notes       string     `json:"notes" gorm:"type:text"`
	IsFavorite  bool       `json:"is_favorite" gorm:"default:false"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
