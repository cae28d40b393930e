package service

import (
	"errors" // Error unwrapping

	"contact_book/internal/apperr" // Typed domain errors
	"contact_book/internal/domain" // Importing domain models
	"contact_book/internal/model"  // Request/response models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ContactService implements contact CRUD and search, always scoped to the
// requesting user
type ContactService struct {
	DB *gorm.DB // Database handle
}

// NewContactService creates a ContactService
func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

// Create stores a new contact for the user. The owner is always the
// authenticated user; the client cannot spoof it.
func (s *ContactService) Create(user *domain.User, request *model.CreateContactRequest) (*model.ContactResponse, error) {
	contact := domain.Contact{
		Username:  user.Username, // Owner injected server-side
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	}
	// Persist the new contact
	if err := s.DB.Create(&contact).Error; err != nil {
		return nil, err
	}
	// Log successful creation
	logrus.WithFields(logrus.Fields{
		"username":   user.Username,
		"contact_id": contact.ID,
	}).Info("Contact created")
	response := model.ToContactResponse(&contact)
	return &response, nil
}

// MustExist is the ownership gate: it fetches a contact by id scoped to
// the owner. A contact owned by someone else reads exactly like a missing
// one so existence never leaks across users.
func (s *ContactService) MustExist(username string, id uint) (*domain.Contact, error) {
	var contact domain.Contact
	err := s.DB.Where("id = ? AND username = ?", id, username).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Contact not found")
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Get returns one of the user's contacts
func (s *ContactService) Get(user *domain.User, id uint) (*model.ContactResponse, error) {
	contact, err := s.MustExist(user.Username, id)
	if err != nil {
		return nil, err
	}
	response := model.ToContactResponse(contact)
	return &response, nil
}

// Update rewrites the supplied fields of one of the user's contacts.
// Absent optional fields are left untouched; the write stays scoped by
// (id, username).
func (s *ContactService) Update(user *domain.User, id uint, request *model.UpdateContactRequest) (*model.ContactResponse, error) {
	contact, err := s.MustExist(user.Username, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{"first_name": request.FirstName} // Columns to write
	contact.FirstName = request.FirstName
	if request.LastName != nil {
		updates["last_name"] = *request.LastName
		contact.LastName = request.LastName
	}
	if request.Email != nil {
		updates["email"] = *request.Email
		contact.Email = request.Email
	}
	if request.Phone != nil {
		updates["phone"] = *request.Phone
		contact.Phone = request.Phone
	}
	if err := s.DB.Model(&domain.Contact{}).Where("id = ? AND username = ?", id, user.Username).Updates(updates).Error; err != nil {
		return nil, err
	}
	response := model.ToContactResponse(contact)
	return &response, nil
}

// Remove deletes one of the user's contacts
func (s *ContactService) Remove(user *domain.User, id uint) error {
	if _, err := s.MustExist(user.Username, id); err != nil {
		return err
	}
	// Delete scoped by (id, username)
	if err := s.DB.Where("id = ? AND username = ?", id, user.Username).Delete(&domain.Contact{}).Error; err != nil {
		return err
	}
	// Log successful deletion
	logrus.WithFields(logrus.Fields{
		"username":   user.Username,
		"contact_id": id,
	}).Info("Contact deleted")
	return nil
}

// Search returns one page of the user's contacts matching the filters.
// Present filters are ANDed; the name filter matches either name column.
func (s *ContactService) Search(user *domain.User, request *model.SearchContactRequest) (*model.Pageable[model.ContactResponse], error) {
	// filtered builds the conjunctive filter fresh for each query
	filtered := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("username = ?", user.Username) // Always scoped to the owner
		if request.Name != "" {
			like := "%" + request.Name + "%"
			tx = tx.Where("(first_name LIKE ? OR last_name LIKE ?)", like, like)
		}
		if request.Email != "" {
			tx = tx.Where("email LIKE ?", "%"+request.Email+"%")
		}
		if request.Phone != "" {
			tx = tx.Where("phone LIKE ?", "%"+request.Phone+"%")
		}
		return tx
	}

	var total int64 // Count matching rows for pagination
	if err := filtered(s.DB.Model(&domain.Contact{})).Count(&total).Error; err != nil {
		return nil, err
	}
	offset := (request.Page - 1) * request.Size // Calculate offset
	var contacts []domain.Contact
	if err := filtered(s.DB).Offset(offset).Limit(request.Size).Find(&contacts).Error; err != nil {
		return nil, err
	}

	data := make([]model.ContactResponse, 0, len(contacts))
	for i := range contacts {
		data = append(data, model.ToContactResponse(&contacts[i]))
	}
	// Calculate total pages
	totalPage := (int(total) + request.Size - 1) / request.Size
	return &model.Pageable[model.ContactResponse]{
		Data: data,
		Paging: model.Paging{
			CurrentPage: request.Page,
			TotalPage:   totalPage,
			Size:        request.Size,
		},
	}, nil
}
