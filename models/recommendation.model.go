package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CareerRecommendation is created once per completed test. Companies is a
// JSON array of company names shown alongside the career.
type CareerRecommendation struct {
	gorm.Model
	PersonalizedTestID uint             `json:"personalized_test_id" gorm:"uniqueIndex;not null"`
	PersonalizedTest   PersonalizedTest `json:"-" gorm:"foreignKey:PersonalizedTestID"`
	AdminID            *uint            `json:"admin_id" gorm:"index"`
	CareerName         string           `json:"career_name" gorm:"not null"`
	Summary            string           `json:"summary" gorm:"type:text"`
	Companies          datatypes.JSON   `json:"companies"`
}

type RoadmapStep struct {
	gorm.Model
	RecommendationID uint   `json:"recommendation_id" gorm:"index;not null"`
	OrderIndex       int    `json:"order" gorm:"not null"`
	Title            string `json:"title" gorm:"not null"`
	Description      string `json:"description" gorm:"type:text"`
}
