package model

import "contact_book/internal/domain" // Importing domain models

// CreateAddressRequest is the payload for creating an address. Only the
// country is mandatory.
type CreateAddressRequest struct {
	Street     *string `json:"street" binding:"omitempty,max=255"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	Province   *string `json:"province" binding:"omitempty,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=10"`
	Country    string  `json:"country" binding:"required,min=1,max=100"`
}

// UpdateAddressRequest is the payload for updating an address; absent
// optional fields are left untouched
type UpdateAddressRequest struct {
	Street     *string `json:"street" binding:"omitempty,max=255"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	Province   *string `json:"province" binding:"omitempty,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=10"`
	Country    string  `json:"country" binding:"required,min=1,max=100"`
}

// AddressResponse is the public view of an address; unset optional
// fields are omitted from the JSON
type AddressResponse struct {
	ID         uint    `json:"id"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    string  `json:"country"`
}

// ToAddressResponse converts an Address entity to its public view
func ToAddressResponse(address *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
}
