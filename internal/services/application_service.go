package services

import (
	"fmt"
	"time"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB         *gorm.DB
	Activities *ActivityService
}

func NewApplicationService(db *gorm.DB, activities *ActivityService) *ApplicationService {
	return &ApplicationService{DB: db, Activities: activities}
}

// Create inserts an application, creating the company on first use. The
// initial stage's timestamp is stamped through the same stage→column table
// the tracker uses.
func (s *ApplicationService) Create(userID uint, req *dtos.ApplicationCreateRequest) (*models.Application, error) {
	var company models.Company
	err := s.DB.Where(models.Company{Name: req.CompanyName, UserID: userID}).
		FirstOrCreate(&company).Error
	if err != nil {
		return nil, err
	}

	stage := models.StageDiscovered
	if req.Stage != "" {
		stage = models.Stage(req.Stage)
	}

	app := &models.Application{
		UserID:      userID,
		CompanyID:   company.ID,
		Title:       req.Title,
		JobLink:     req.JobLink,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		Notes:       req.Notes,
		Stage:       stage,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}

	if column, ok := models.StageTimestampColumns[stage]; ok {
		if err := s.DB.Model(app).Update(column, time.Now()).Error; err != nil {
			return nil, err
		}
	}

	s.Activities.LogActivity(userID, &app.ID, models.ActivityCreated,
		fmt.Sprintf("Added application for %s at %s", app.Title, company.Name), nil)

	return s.Get(userID, app.ID)
}

// Get fetches one application with its relations, scoped to the owner. A row
// belonging to someone else comes back as gorm.ErrRecordNotFound.
func (s *ApplicationService) Get(userID, id uint) (*models.Application, error) {
	var app models.Application
	err := s.DB.Preload("Company").
		Preload("Interviews").
		Preload("Offer").
		Preload("Tasks").
		Preload("Attachments").
		Where("id = ? AND user_id = ?", id, userID).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// List returns the user's applications, newest first, optionally filtered by
// stage and company.
func (s *ApplicationService) List(userID uint, stage string, companyID uint) ([]models.Application, error) {
	q := s.DB.Preload("Company").Where("user_id = ?", userID)
	if stage != "" {
		q = q.Where("stage = ?", stage)
	}
	if companyID != 0 {
		q = q.Where("company_id = ?", companyID)
	}

	var apps []models.Application
	err := q.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

// Board groups the user's applications by stage for the kanban view. Every
// stage is present in the result, empty or not.
func (s *ApplicationService) Board(userID uint) (map[models.Stage][]models.Application, error) {
	var apps []models.Application
	err := s.DB.Preload("Company").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	board := make(map[models.Stage][]models.Application, len(models.Stages))
	for _, stage := range models.Stages {
		board[stage] = []models.Application{}
	}
	for _, app := range apps {
		board[app.Stage] = append(board[app.Stage], app)
	}
	return board, nil
}

// Update applies a partial update. When the stage changes it goes through
// LogStageChange; any other update writes a plain UPDATED activity.
func (s *ApplicationService) Update(userID, id uint, req *dtos.ApplicationUpdateRequest) (*models.Application, error) {
	var app models.Application
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&app).Error; err != nil {
		return nil, err
	}
	oldStage := app.Stage

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.JobLink != nil {
		updates["job_link"] = *req.JobLink
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.SalaryRange != nil {
		updates["salary_range"] = *req.SalaryRange
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	stageChanged := false
	var newStage models.Stage
	if req.Stage != nil {
		newStage = models.Stage(*req.Stage)
		updates["stage"] = string(newStage)
		stageChanged = newStage != oldStage
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&app).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if stageChanged {
		if err := s.Activities.LogStageChange(userID, app.ID, oldStage, newStage); err != nil {
			return nil, err
		}
	} else {
		s.Activities.LogActivity(userID, &app.ID, models.ActivityUpdated,
			fmt.Sprintf("Updated application for %s", app.Title), nil)
	}

	return s.Get(userID, id)
}

// Delete removes an application; interviews, tasks, offer, activities and
// attachments go with it by cascade. The audit row is account-level since the
// application's own activities are gone.
func (s *ApplicationService) Delete(userID, id uint) error {
	var app models.Application
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&app).Error; err != nil {
		return err
	}
	if err := s.DB.Delete(&app).Error; err != nil {
		return err
	}

	s.Activities.LogActivity(userID, nil, models.ActivityDeleted,
		fmt.Sprintf("Deleted application for %s", app.Title), nil)
	return nil
}
