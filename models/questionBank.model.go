package models

import "gorm.io/gorm"

// QuestionCategory groups reusable question templates (e.g. Plus Two,
// Engineering). Deactivated, never deleted, so copied questions keep their
// provenance links.
type QuestionCategory struct {
	gorm.Model
	Name             string `json:"name" gorm:"unique;not null"`
	Description      string `json:"description" gorm:"type:text"`
	QualificationTag string `json:"qualification_tag" gorm:"default:''"` // e.g. plus_two, engineering
	IsActive         bool   `json:"is_active" gorm:"default:true"`
}

// QuestionTemplate is a reusable question that can be copied into a
// personalized test.
type QuestionTemplate struct {
	gorm.Model
	CategoryID uint             `json:"category_id" gorm:"index;not null"`
	Category   QuestionCategory `json:"-" gorm:"foreignKey:CategoryID"`
	Prompt     string           `json:"prompt" gorm:"type:text;not null"`
	OrderIndex int              `json:"order" gorm:"default:0"`
	IsActive   bool             `json:"is_active" gorm:"default:true"`
}

type OptionTemplate struct {
	gorm.Model
	TemplateID  uint   `json:"template_id" gorm:"index;not null"`
	Label       string `json:"label" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order" gorm:"default:0"`
}
