package services

import (
	"errors"
	"fmt"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
	"gorm.io/gorm"
)

// ErrOfferExists is returned when an application already has an offer.
var ErrOfferExists = errors.New("application already has an offer")

type OfferService struct {
	DB         *gorm.DB
	Activities *ActivityService
}

func NewOfferService(db *gorm.DB, activities *ActivityService) *OfferService {
	return &OfferService{DB: db, Activities: activities}
}

func (s *OfferService) Create(userID, applicationID uint, req *dtos.OfferCreateRequest) (*models.Offer, error) {
	app, err := ownedApplication(s.DB, userID, applicationID)
	if err != nil {
		return nil, err
	}

	var existing models.Offer
	if err := s.DB.Where("application_id = ?", app.ID).First(&existing).Error; err == nil {
		return nil, ErrOfferExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "PENDING"
	}

	offer := &models.Offer{
		ApplicationID: app.ID,
		Salary:        req.Salary,
		Equity:        req.Equity,
		Bonus:         req.Bonus,
		Deadline:      req.Deadline,
		Status:        status,
		Notes:         req.Notes,
	}
	if err := s.DB.Create(offer).Error; err != nil {
		return nil, err
	}

	s.Activities.LogActivity(userID, &app.ID, models.ActivityCreated,
		fmt.Sprintf("Recorded offer for %s", app.Title), nil)
	return offer, nil
}

// GetForApplication returns the application's offer, owner-scoped.
func (s *OfferService) GetForApplication(userID, applicationID uint) (*models.Offer, error) {
	app, err := ownedApplication(s.DB, userID, applicationID)
	if err != nil {
		return nil, err
	}

	var offer models.Offer
	if err := s.DB.Where("application_id = ?", app.ID).First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *OfferService) getOwned(userID, id uint) (*models.Offer, error) {
	var offer models.Offer
	err := s.DB.Joins("JOIN applications ON applications.id = offers.application_id").
		Where("offers.id = ? AND applications.user_id = ?", id, userID).
		First(&offer).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *OfferService) Update(userID, id uint, req *dtos.OfferUpdateRequest) (*models.Offer, error) {
	offer, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Equity != nil {
		updates["equity"] = *req.Equity
	}
	if req.Bonus != nil {
		updates["bonus"] = *req.Bonus
	}
	if req.Deadline != nil {
		updates["deadline"] = *req.Deadline
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.DB.Model(offer).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.Activities.LogActivity(userID, &offer.ApplicationID, models.ActivityUpdated,
		"Updated offer", nil)
	return offer, nil
}

func (s *OfferService) Delete(userID, id uint) error {
	offer, err := s.getOwned(userID, id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(offer).Error; err != nil {
		return err
	}

	s.Activities.LogActivity(userID, &offer.ApplicationID, models.ActivityDeleted,
		"Deleted offer", nil)
	return nil
}
