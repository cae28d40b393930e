package model

import "contact_book/internal/domain" // Importing domain models

// CreateContactRequest is the payload for creating a contact. Only the
// first name is mandatory; email must be well formed when present.
type CreateContactRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
}

// UpdateContactRequest is the payload for updating a contact; absent
// optional fields are left untouched
type UpdateContactRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
}

// SearchContactRequest carries the query parameters for contact search.
// Page and Size validate unconditionally: an explicit page=0 or size=0
// is a constraint violation, not an absent value, so omitempty would
// wave it through. The form defaults cover absent parameters before
// validation runs.
type SearchContactRequest struct {
	Name  string `form:"name" binding:"omitempty,max=100"`
	Email string `form:"email" binding:"omitempty,max=100"`
	Phone string `form:"phone" binding:"omitempty,max=20"`
	Page  int    `form:"page,default=1" binding:"min=1"`
	Size  int    `form:"size,default=10" binding:"min=1,max=100"`
}

// ContactResponse is the public view of a contact; unset optional
// fields are omitted from the JSON
type ContactResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ToContactResponse converts a Contact entity to its public view
func ToContactResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
