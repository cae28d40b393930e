package api

import (
	"contact_book/internal/apperr"     // Centralized error translation
	"contact_book/internal/middleware" // Auth middleware
	"contact_book/internal/service"    // Business services

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter wires services, middleware and routes into a gin engine
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(apperr.ErrorHandler()) // Centralized error-to-status mapping

	users := service.NewUserService(db)
	contacts := service.NewContactService(db)
	addresses := service.NewAddressService(db, contacts)

	// Public routes
	r.POST("/users", RegisterHandler(users))
	r.POST("/users/login", LoginHandler(users))

	// Protected routes (token required)
	authorized := r.Group("")
	authorized.Use(middleware.AuthMiddleware(db))
	authorized.GET("/users/current", GetCurrentUserHandler(users))
	authorized.PATCH("/users/current", UpdateUserHandler(users))
	authorized.DELETE("/users/current", LogoutHandler(users))
	authorized.POST("/contacts", CreateContactHandler(contacts))
	authorized.GET("/contacts", SearchContactHandler(contacts))
	authorized.GET("/contacts/:contactId", GetContactHandler(contacts))
	authorized.PUT("/contacts/:contactId", UpdateContactHandler(contacts))
	authorized.DELETE("/contacts/:contactId", RemoveContactHandler(contacts))
	authorized.POST("/contacts/:contactId/addresses", CreateAddressHandler(addresses))
	authorized.GET("/contacts/:contactId/addresses", ListAddressesHandler(addresses))
	authorized.GET("/contacts/:contactId/addresses/:addressId", GetAddressHandler(addresses))
	authorized.PUT("/contacts/:contactId/addresses/:addressId", UpdateAddressHandler(addresses))
	authorized.DELETE("/contacts/:contactId/addresses/:addressId", RemoveAddressHandler(addresses))

	return r
}
