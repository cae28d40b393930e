package model

import "contact_book/internal/domain" // Importing domain models

// RegisterUserRequest is the payload for user registration
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,max=100"` // Username must be provided
	Password string `json:"password" binding:"required,max=100"` // Password must be provided
	Name     string `json:"name" binding:"required,max=100"`     // Name must be provided
}

// LoginUserRequest is the payload for user login
type LoginUserRequest struct {
	Username string `json:"username" binding:"required,max=100"` // Username must be provided
	Password string `json:"password" binding:"required,max=100"` // Password must be provided
}

// UpdateUserRequest is the payload for profile updates; both fields are
// optional and independently settable
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`     // New display name, optional
	Password *string `json:"password" binding:"omitempty,min=1,max=100"` // New plaintext password, optional
}

// UserResponse is the public view of a user. The password hash and the
// session token never appear here; login fills Token explicitly.
type UserResponse struct {
	Username string `json:"username"`        // Username
	Name     string `json:"name"`            // Display name
	Token    string `json:"token,omitempty"` // Session token, login only
}

// ToUserResponse converts a User entity to its public view
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
