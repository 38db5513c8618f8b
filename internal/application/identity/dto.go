package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/identity"
)

// CreateUserRequest represents a request to create a new user
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email,max=200"`
	Name  string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain User to a UserResponse
func ToUserResponse(user *identity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
