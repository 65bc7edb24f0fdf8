package models

import "gorm.io/gorm"

// Question belongs to one personalized test. TemplateID records the bank
// template it was copied from, if any; it is provenance only, editing the
// template never touches copied questions.
type Question struct {
	gorm.Model
	PersonalizedTestID uint   `json:"personalized_test_id" gorm:"index;not null"`
	TemplateID         *uint  `json:"template_id" gorm:"index"`
	Prompt             string `json:"prompt" gorm:"type:text;not null"`
	OrderIndex         int    `json:"order" gorm:"default:0"`
}

type Option struct {
	gorm.Model
	QuestionID  uint   `json:"question_id" gorm:"index;not null"`
	Label       string `json:"label" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order" gorm:"default:0"`
}
