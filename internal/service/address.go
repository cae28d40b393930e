package service

import (
	"errors" // Error unwrapping

	"contact_book/internal/apperr" // Typed domain errors
	"contact_book/internal/domain" // Importing domain models
	"contact_book/internal/model"  // Request/response models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// AddressService implements address CRUD under a contact. Every operation
// passes the contact ownership gate before the address is even looked at,
// in that order, so an address under someone else's contact reads as 404.
type AddressService struct {
	DB       *gorm.DB        // Database handle
	Contacts *ContactService // Ownership gate for the parent contact
}

// NewAddressService creates an AddressService
func NewAddressService(db *gorm.DB, contacts *ContactService) *AddressService {
	return &AddressService{DB: db, Contacts: contacts}
}

// Create stores a new address under one of the user's contacts
func (s *AddressService) Create(user *domain.User, contactID uint, request *model.CreateAddressRequest) (*model.AddressResponse, error) {
	// Contact ownership gate first, before any address work
	if _, err := s.Contacts.MustExist(user.Username, contactID); err != nil {
		return nil, err
	}
	address := domain.Address{
		ContactID:  contactID,
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		PostalCode: request.PostalCode,
		Country:    request.Country,
	}
	// Persist the new address
	if err := s.DB.Create(&address).Error; err != nil {
		return nil, err
	}
	// Log successful creation
	logrus.WithFields(logrus.Fields{
		"username":   user.Username,
		"contact_id": contactID,
		"address_id": address.ID,
	}).Info("Address created")
	response := model.ToAddressResponse(&address)
	return &response, nil
}

// MustExist fetches an address by id scoped to its contact. An address
// that exists under a different contact reads as missing.
func (s *AddressService) MustExist(id uint, contactID uint) (*domain.Address, error) {
	var address domain.Address
	err := s.DB.Where("id = ? AND contact_id = ?", id, contactID).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Address not found")
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// Get returns one address under one of the user's contacts
func (s *AddressService) Get(user *domain.User, contactID uint, id uint) (*model.AddressResponse, error) {
	// Contact gate, then address gate
	if _, err := s.Contacts.MustExist(user.Username, contactID); err != nil {
		return nil, err
	}
	address, err := s.MustExist(id, contactID)
	if err != nil {
		return nil, err
	}
	response := model.ToAddressResponse(address)
	return &response, nil
}

// Update rewrites the supplied fields of an address under one of the
// user's contacts
func (s *AddressService) Update(user *domain.User, contactID uint, id uint, request *model.UpdateAddressRequest) (*model.AddressResponse, error) {
	// Contact gate, then address gate
	if _, err := s.Contacts.MustExist(user.Username, contactID); err != nil {
		return nil, err
	}
	address, err := s.MustExist(id, contactID)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{"country": request.Country} // Columns to write
	address.Country = request.Country
	if request.Street != nil {
		updates["street"] = *request.Street
		address.Street = request.Street
	}
	if request.City != nil {
		updates["city"] = *request.City
		address.City = request.City
	}
	if request.Province != nil {
		updates["province"] = *request.Province
		address.Province = request.Province
	}
	if request.PostalCode != nil {
		updates["postal_code"] = *request.PostalCode
		address.PostalCode = request.PostalCode
	}
	if err := s.DB.Model(&domain.Address{}).Where("id = ? AND contact_id = ?", id, contactID).Updates(updates).Error; err != nil {
		return nil, err
	}
	response := model.ToAddressResponse(address)
	return &response, nil
}

// Remove deletes one address under one of the user's contacts
func (s *AddressService) Remove(user *domain.User, contactID uint, id uint) error {
	// Contact gate, then address gate
	if _, err := s.Contacts.MustExist(user.Username, contactID); err != nil {
		return err
	}
	if _, err := s.MustExist(id, contactID); err != nil {
		return err
	}
	if err := s.DB.Where("id = ? AND contact_id = ?", id, contactID).Delete(&domain.Address{}).Error; err != nil {
		return err
	}
	// Log successful deletion
	logrus.WithFields(logrus.Fields{
		"username":   user.Username,
		"contact_id": contactID,
		"address_id": id,
	}).Info("Address deleted")
	return nil
}

// List returns all addresses under one of the user's contacts. The list
// is unbounded; addresses per contact stay small in practice.
func (s *AddressService) List(user *domain.User, contactID uint) ([]model.AddressResponse, error) {
	// Contact ownership gate first
	if _, err := s.Contacts.MustExist(user.Username, contactID); err != nil {
		return nil, err
	}
	var addresses []domain.Address
	if err := s.DB.Where("contact_id = ?", contactID).Find(&addresses).Error; err != nil {
		return nil, err
	}
	responses := make([]model.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, model.ToAddressResponse(&addresses[i]))
	}
	return responses, nil
}
