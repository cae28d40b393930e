package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"contact_book/internal/middleware" // Auth context helpers
	"contact_book/internal/model"      // Request/response models
	"contact_book/internal/service"    // Business services

	"github.com/gin-gonic/gin" // Gin web framework
)

// pathID parses a numeric path parameter. Unparseable values yield 0,
// which no row ever has, so they read as a missing resource downstream.
func pathID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// CreateContactHandler handles POST /contacts
func CreateContactHandler(contacts *service.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		var request model.CreateContactRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&request); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		response, err := contacts.Create(user, &request)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// GetContactHandler handles GET /contacts/:contactId
func GetContactHandler(contacts *service.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		response, err := contacts.Get(user, pathID(c, "contactId"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// UpdateContactHandler handles PUT /contacts/:contactId
func UpdateContactHandler(contacts *service.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		var request model.UpdateContactRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&request); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		response, err := contacts.Update(user, pathID(c, "contactId"), &request)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// RemoveContactHandler handles DELETE /contacts/:contactId
func RemoveContactHandler(contacts *service.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if err := contacts.Remove(user, pathID(c, "contactId")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": "OK"})
	}
}

// SearchContactHandler handles GET /contacts
func SearchContactHandler(contacts *service.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		var request model.SearchContactRequest // Bind query parameters to struct
		if err := c.ShouldBindQuery(&request); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		page, err := contacts.Search(user, &request)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, page) // Pageable already carries data + paging
	}
}
