package database

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a projects query to rows owned by userID. Every project
// read, update and delete goes through this scope so another user's project
// behaves exactly like a missing one.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("projects.user_id = ?", userID)
	}
}
