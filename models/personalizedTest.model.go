package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TestStatusDraft     = "draft"
	TestStatusAssigned  = "assigned"
	TestStatusCompleted = "completed"
)

// PersonalizedTest is the admin-built test for exactly one TestRequest.
type PersonalizedTest struct {
	gorm.Model
	RequestID   uint        `json:"request_id" gorm:"uniqueIndex;not null"`
	Request     TestRequest `json:"-" gorm:"foreignKey:RequestID"`
	AdminID     *uint       `json:"admin_id" gorm:"index"`
	Status      string      `json:"status" gorm:"default:'draft'"` // draft, assigned, completed
	AssignedAt  *time.Time  `json:"assigned_at"`
	CompletedAt *time.Time  `json:"completed_at"`
}
