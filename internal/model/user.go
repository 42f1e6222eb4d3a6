package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:100;unique;not null" json:"email"`
	Password      string    `gorm:"size:100" json:"-"` // empty for OAuth-only accounts
	Provider      string    `gorm:"size:20;default:'local'" json:"provider"`
	ProviderID    string    `gorm:"size:100;index" json:"-"`
	Avatar        string    `gorm:"size:255" json:"avatar"`
	EmailVerified bool      `gorm:"default:false" json:"emailVerified"`
	LastLogin     time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen      time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
