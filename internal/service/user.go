package service

import (
	"errors" // Error unwrapping

	"contact_book/internal/apperr" // Typed domain errors
	"contact_book/internal/domain" // Importing domain models
	"contact_book/internal/model"  // Request/response models

	"github.com/google/uuid"     // Random session token generation
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserService implements registration, login and profile management
type UserService struct {
	DB *gorm.DB // Database handle
}

// NewUserService creates a UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a new user with a hashed password. The username must
// not be taken yet.
func (s *UserService) Register(request *model.RegisterUserRequest) (*model.UserResponse, error) {
	var total int64 // Count existing users with this username
	if err := s.DB.Model(&domain.User{}).Where("username = ?", request.Username).Count(&total).Error; err != nil {
		return nil, err
	}
	// Reject duplicate usernames
	if total > 0 {
		return nil, apperr.BadRequest("Username already registered")
	}
	// Hash the password before it ever touches the store
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		Username: request.Username,
		Name:     request.Name,
		Password: string(hash),
	}
	// Persist the new user
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	// Log successful registration
	logrus.WithFields(logrus.Fields{
		"username": user.Username,
	}).Info("User registered")
	response := model.ToUserResponse(&user)
	return &response, nil
}

// Login verifies credentials and issues a fresh session token. Unknown
// usernames and wrong passwords fail with the same message so usernames
// cannot be enumerated.
func (s *UserService) Login(request *model.LoginUserRequest) (*model.UserResponse, error) {
	var user domain.User // Fetch user by username
	if err := s.DB.Where("username = ?", request.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Username or password wrong")
		}
		return nil, err
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, apperr.Unauthorized("Username or password wrong")
	}
	// Issue a fresh token; overwriting the column invalidates any prior one
	token := uuid.NewString()
	if err := s.DB.Model(&user).Update("token", token).Error; err != nil {
		return nil, err
	}
	// Log successful login
	logrus.WithFields(logrus.Fields{
		"username": user.Username,
	}).Info("User logged in")
	response := model.ToUserResponse(&user)
	response.Token = token // Login is the only response carrying the token
	return &response, nil
}

// Current returns the public view of the already-authenticated user
func (s *UserService) Current(user *domain.User) *model.UserResponse {
	response := model.ToUserResponse(user)
	return &response
}

// Update changes the name and/or password of the user. Only the supplied
// columns are written, so an update can never resurrect a stale token.
func (s *UserService) Update(user *domain.User, request *model.UpdateUserRequest) (*model.UserResponse, error) {
	updates := map[string]any{} // Columns to write
	if request.Name != nil {
		updates["name"] = *request.Name
		user.Name = *request.Name
	}
	if request.Password != nil {
		// Re-hash the new password before storing
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
		user.Password = string(hash)
	}
	// Persist only when something was supplied
	if len(updates) > 0 {
		if err := s.DB.Model(&domain.User{}).Where("username = ?", user.Username).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	response := model.ToUserResponse(user)
	return &response, nil
}

// Logout clears the session token so it can no longer authenticate
func (s *UserService) Logout(user *domain.User) error {
	if err := s.DB.Model(&domain.User{}).Where("username = ?", user.Username).Update("token", nil).Error; err != nil {
		return err
	}
	// Log successful logout
	logrus.WithFields(logrus.Fields{
		"username": user.Username,
	}).Info("User logged out")
	return nil
}
