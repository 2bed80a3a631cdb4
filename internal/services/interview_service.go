package services

import (
	"fmt"
	"time"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
	"gorm.io/gorm"
)

// ownedApplication fetches an application under the owner filter. Rows owned
// by someone else surface as gorm.ErrRecordNotFound, same as missing rows.
func ownedApplication(db *gorm.DB, userID, applicationID uint) (*models.Application, error) {
	var app models.Application
	if err := db.Where("id = ? AND user_id = ?", applicationID, userID).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

type InterviewService struct {
	DB         *gorm.DB
	Activities *ActivityService
}

func NewInterviewService(db *gorm.DB, activities *ActivityService) *InterviewService {
	return &InterviewService{DB: db, Activities: activities}
}

func (s *InterviewService) Create(userID, applicationID uint, req *dtos.InterviewCreateRequest) (*models.Interview, error) {
	app, err := ownedApplication(s.DB, userID, applicationID)
	if err != nil {
		return nil, err
	}

	interview := &models.Interview{
		ApplicationID: app.ID,
		Type:          req.Type,
		ScheduledAt:   req.ScheduledAt,
		DurationMin:   req.DurationMin,
		Location:      req.Location,
		Notes:         req.Notes,
	}
	if err := s.DB.Create(interview).Error; err != nil {
		return nil, err
	}

	s.Activities.LogActivity(userID, &app.ID, models.ActivityCreated,
		fmt.Sprintf("Scheduled %s interview for %s", interview.Type, app.Title), nil)
	return interview, nil
}

// getOwned resolves ownership through the interview's application.
func (s *InterviewService) getOwned(userID, id uint) (*models.Interview, error) {
	var interview models.Interview
	err := s.DB.Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("interviews.id = ? AND applications.user_id = ?", id, userID).
		First(&interview).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (s *InterviewService) Get(userID, id uint) (*models.Interview, error) {
	return s.getOwned(userID, id)
}

// List returns the user's interviews, optionally restricted to a time range
// for the calendar view.
func (s *InterviewService) List(userID uint, from, to *time.Time) ([]models.Interview, error) {
	q := s.DB.Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("applications.user_id = ?", userID)
	if from != nil {
		q = q.Where("interviews.scheduled_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("interviews.scheduled_at < ?", *to)
	}

	var interviews []models.Interview
	err := q.Order("interviews.scheduled_at ASC").Find(&interviews).Error
	return interviews, err
}

func (s *InterviewService) Update(userID, id uint, req *dtos.InterviewUpdateRequest) (*models.Interview, error) {
	interview, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.ScheduledAt != nil {
		updates["scheduled_at"] = *req.ScheduledAt
	}
	if req.DurationMin != nil {
		updates["duration_min"] = *req.DurationMin
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.DB.Model(interview).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.Activities.LogActivity(userID, &interview.ApplicationID, models.ActivityUpdated,
		fmt.Sprintf("Updated %s interview", interview.Type), nil)
	return interview, nil
}

func (s *InterviewService) Delete(userID, id uint) error {
	interview, err := s.getOwned(userID, id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(interview).Error; err != nil {
		return err
	}

	s.Activities.LogActivity(userID, &interview.ApplicationID, models.ActivityDeleted,
		fmt.Sprintf("Cancelled %s interview", interview.Type), nil)
	return nil
}
