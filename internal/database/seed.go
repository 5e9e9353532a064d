package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// SeedUser creates the bootstrap user if no user with that username
// exists yet. It reports whether a row was created, so repeated runs are
// safe.
func SeedUser(db *gorm.DB, username, email, passwordHash string) (bool, error) {
	var existing User
	switch err := db.Where("username = ?", username).First(&existing).Error; {
	case err == nil:
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return false, fmt.Errorf("query user: %w", err)
	}

	user := User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}
	return true, nil
}
