package models

import "gorm.io/gorm"

type CompanyCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description" gorm:"type:text"`
}

type Company struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"not null"`
	Website     string `json:"website" gorm:"default:''"`
	Description string `json:"description" gorm:"type:text"`
	Location    string `json:"location" gorm:"default:''"`
	Industry    string `json:"industry" gorm:"default:''"`
	CategoryID  *uint  `json:"category_id" gorm:"index"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

// JobRecommendation links a concrete opening at a company to a career
// recommendation.
type JobRecommendation struct {
	gorm.Model
	RecommendationID uint   `json:"recommendation_id" gorm:"index;not null"`
	CompanyID        uint   `json:"company_id" gorm:"index;not null"`
	JobTitle         string `json:"job_title" gorm:"not null"`
	JobDescription   string `json:"job_description" gorm:"type:text"`
	Requirements     string `json:"requirements" gorm:"type:text"`
	SalaryRange      string `json:"salary_range" gorm:"default:''"`
	JobType          string `json:"job_type" gorm:"default:'full_time'"` // full_time, part_time, contract, internship, remote
	ApplicationURL   string `json:"application_url" gorm:"default:''"`
	OrderIndex       int    `json:"order" gorm:"default:0"`
	IsActive         bool   `json:"is_active" gorm:"default:true"`
}
