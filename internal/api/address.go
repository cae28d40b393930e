package api

import (
	"net/http" // HTTP status codes

	"contact_book/internal/middleware" // Auth context helpers
	"contact_book/internal/model"      // Request/response models
	"contact_book/internal/service"    // Business services

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateAddressHandler handles POST /contacts/:contactId/addresses
func CreateAddressHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		var request model.CreateAddressRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&request); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		response, err := addresses.Create(user, pathID(c, "contactId"), &request)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// GetAddressHandler handles GET /contacts/:contactId/addresses/:addressId
func GetAddressHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		response, err := addresses.Get(user, pathID(c, "contactId"), pathID(c, "addressId"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// UpdateAddressHandler handles PUT /contacts/:contactId/addresses/:addressId
func UpdateAddressHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		var request model.UpdateAddressRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&request); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		response, err := addresses.Update(user, pathID(c, "contactId"), pathID(c, "addressId"), &request)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": response})
	}
}

// RemoveAddressHandler handles DELETE /contacts/:contactId/addresses/:addressId
func RemoveAddressHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if err := addresses.Remove(user, pathID(c, "contactId"), pathID(c, "addressId")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": "OK"})
	}
}

// ListAddressesHandler handles GET /contacts/:contactId/addresses
func ListAddressesHandler(addresses *service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		responses, err := addresses.List(user, pathID(c, "contactId"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": responses})
	}
}
