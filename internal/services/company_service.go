package services

import (
	"fmt"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB         *gorm.DB
	Activities *ActivityService
}

func NewCompanyService(db *gorm.DB, activities *ActivityService) *CompanyService {
	return &CompanyService{DB: db, Activities: activities}
}

func (s *CompanyService) Create(userID uint, req *dtos.CompanyCreateRequest) (*models.Company, error) {
	company := &models.Company{
		UserID:   userID,
		Name:     req.Name,
		Website:  req.Website,
		Industry: req.Industry,
		Location: req.Location,
		Notes:    req.Notes,
	}
	if err := s.DB.Create(company).Error; err != nil {
		return nil, err
	}

	s.Activities.LogActivity(userID, nil, models.ActivityCreated,
		fmt.Sprintf("Added company %s", company.Name), nil)
	return company, nil
}

func (s *CompanyService) Get(userID, id uint) (*models.Company, error) {
	var company models.Company
	err := s.DB.Preload("Applications").Preload("Contacts").
		Where("id = ? AND user_id = ?", id, userID).
		First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) List(userID uint) ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.Where("user_id = ?", userID).Order("name ASC").Find(&companies).Error
	return companies, err
}

func (s *CompanyService) Update(userID, id uint, req *dtos.CompanyUpdateRequest) (*models.Company, error) {
	var company models.Company
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&company).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&company).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.Activities.LogActivity(userID, nil, models.ActivityUpdated,
		fmt.Sprintf("Updated company %s", company.Name), nil)
	return &company, nil
}

// Delete removes a company; its applications cascade away and its contacts
// lose their company reference (set null).
func (s *CompanyService) Delete(userID, id uint) error {
	var company models.Company
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&company).Error; err != nil {
		return err
	}
	if err := s.DB.Delete(&company).Error; err != nil {
		return err
	}

	s.Activities.LogActivity(userID, nil, models.ActivityDeleted,
		fmt.Sprintf("Deleted company %s", company.Name), nil)
	return nil
}
