package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"userId"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"userFirstName"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"userLastName"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"userEmail"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	RoleID       uint64    `gorm:"not null;default:2" json:"userRoleId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Projects []Project `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
