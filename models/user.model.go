package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	FirstName     string     `json:"first_name" gorm:"default:''"`
	LastName      string     `json:"last_name" gorm:"default:''"`
	Email         string     `json:"email" gorm:"unique;not null"`
	Password      string     `json:"-" gorm:"not null"`
	Role          string     `json:"role" gorm:"default:'student'"` // student, admin
	Phone         string     `json:"phone" gorm:"default:''"`
	Qualification string     `json:"qualification" gorm:"default:''"`
	Interests     string     `json:"interests" gorm:"default:''"`
	LastLogin     *time.Time `json:"last_login"`
	IsDeleted     bool       `json:"-" gorm:"default:false"`
}

// FullName joins first and last name, falling back to the email local part
// when the profile has no name set.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		if at := strings.Index(u.Email, "@"); at > 0 {
			return u.Email[:at]
		}
		return u.Email
	}
	return name
}
