package dto

import (
	"github.com/yukikurage/project-management-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never exposed.
type UserDTO struct {
	ID        uint64 `json:"userId"`
	FirstName string `json:"userFirstName"`
	LastName  string `json:"userLastName"`
	Email     string `json:"userEmail"`
	RoleID    uint64 `json:"userRoleId"`
}

// SignupRequest is the body of POST /signup
type SignupRequest struct {
	FirstName string `json:"userFirstName"`
	LastName  string `json:"userLastName"`
	Email     string `json:"userEmail"`
	Password  string `json:"userPassword"`
}

// SigninRequest is the body of POST /signin
type SigninRequest struct {
	Email    string `json:"userEmail"`
	Password string `json:"userPassword"`
}

// TokenResponse is returned by a successful signin
type TokenResponse struct {
	Token string `json:"Token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		RoleID:    user.RoleID,
	}
}
