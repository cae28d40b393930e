package api

import (
	"net/http" // HTTP status codes

	"contact_book/internal/middleware" // Auth context helpers
	"contact_book/internal/model"      // Request/response models
	"contact_book/internal/service"    // Business services

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterHandler handles POST /users
func RegisterHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request model.RegisterUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&request); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		response, err := users.Register(&request)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// LoginHandler handles POST /users/login
func LoginHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request model.LoginUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&request); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		response, err := users.Login(&request)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// GetCurrentUserHandler handles GET /users/current
func GetCurrentUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Resolved by the auth middleware
		c.JSON(http.StatusOK, gin.H{"data": users.Current(user)})
	}
}

// UpdateUserHandler handles PATCH /users/current
func UpdateUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		var request model.UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&request); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		response, err := users.Update(user, &request)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// LogoutHandler handles DELETE /users/current
func LogoutHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if err := users.Logout(user); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": "OK"})
	}
}
