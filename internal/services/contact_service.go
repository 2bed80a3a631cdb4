package services

import (
	"fmt"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
	"gorm.io/gorm"
)

type ContactService struct {
	DB         *gorm.DB
	Activities *ActivityService
}

func NewContactService(db *gorm.DB, activities *ActivityService) *ContactService {
	return &ContactService{DB: db, Activities: activities}
}

// checkCompany verifies a referenced company belongs to the caller before a
// contact can point at it.
func (s *ContactService) checkCompany(userID uint, companyID *uint) error {
	if companyID == nil {
		return nil
	}
	var company models.Company
	return s.DB.Select("id").Where("id = ? AND user_id = ?", *companyID, userID).First(&company).Error
}

func (s *ContactService) Create(userID uint, req *dtos.ContactCreateRequest) (*models.Contact, error) {
	if err := s.checkCompany(userID, req.CompanyID); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		UserID:    userID,
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Role:      req.Role,
		Email:     req.Email,
		Phone:     req.Phone,
		LinkedIn:  req.LinkedIn,
		Notes:     req.Notes,
	}
	if err := s.DB.Create(contact).Error; err != nil {
		return nil, err
	}

	s.Activities.LogActivity(userID, nil, models.ActivityCreated,
		fmt.Sprintf("Added contact %s", contact.Name), nil)
	return contact, nil
}

func (s *ContactService) Get(userID, id uint) (*models.Contact, error) {
	var contact models.Contact
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *ContactService) List(userID uint, companyID uint) ([]models.Contact, error) {
	q := s.DB.Where("user_id = ?", userID)
	if companyID != 0 {
		q = q.Where("company_id = ?", companyID)
	}

	var contacts []models.Contact
	err := q.Order("name ASC").Find(&contacts).Error
	return contacts, err
}

func (s *ContactService) Update(userID, id uint, req *dtos.ContactUpdateRequest) (*models.Contact, error) {
	var contact models.Contact
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error; err != nil {
		return nil, err
	}
	if err := s.checkCompany(userID, req.CompanyID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CompanyID != nil {
		updates["company_id"] = *req.CompanyID
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.LinkedIn != nil {
		updates["linked_in"] = *req.LinkedIn
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&contact).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.Activities.LogActivity(userID, nil, models.ActivityUpdated,
		fmt.Sprintf("Updated contact %s", contact.Name), nil)
	return &contact, nil
}

func (s *ContactService) Delete(userID, id uint) error {
	var contact models.Contact
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error; err != nil {
		return err
	}
	if err := s.DB.Delete(&contact).Error; err != nil {
		return err
	}

	s.Activities.LogActivity(userID, nil, models.ActivityDeleted,
		fmt.Sprintf("Deleted contact %s", contact.Name), nil)
	return nil
}
