package services

import (
	"fmt"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
	"gorm.io/gorm"
)

type TaskService struct {
	DB         *gorm.DB
	Activities *ActivityService
}

func NewTaskService(db *gorm.DB, activities *ActivityService) *TaskService {
	return &TaskService{DB: db, Activities: activities}
}

func (s *TaskService) Create(userID uint, req *dtos.TaskCreateRequest) (*models.Task, error) {
	if req.ApplicationID != nil {
		if _, err := ownedApplication(s.DB, userID, *req.ApplicationID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		UserID:        userID,
		ApplicationID: req.ApplicationID,
		Title:         req.Title,
		Notes:         req.Notes,
		DueAt:         req.DueAt,
	}
	if err := s.DB.Create(task).Error; err != nil {
		return nil, err
	}

	s.Activities.LogActivity(userID, req.ApplicationID, models.ActivityCreated,
		fmt.Sprintf("Added task %q", task.Title), nil)
	return task, nil
}

func (s *TaskService) Get(userID, id uint) (*models.Task, error) {
	var task models.Task
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the user's tasks; completed filters by done state when
// provided, and open tasks sort by due date first.
func (s *TaskService) List(userID uint, completed *bool) ([]models.Task, error) {
	q := s.DB.Where("user_id = ?", userID)
	if completed != nil {
		q = q.Where("completed = ?", *completed)
	}

	var tasks []models.Task
	err := q.Order("due_at ASC, created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (s *TaskService) Update(userID, id uint, req *dtos.TaskUpdateRequest) (*models.Task, error) {
	task, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.DueAt != nil {
		updates["due_at"] = *req.DueAt
	}
	if len(updates) > 0 {
		if err := s.DB.Model(task).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.Activities.LogActivity(userID, task.ApplicationID, models.ActivityUpdated,
		fmt.Sprintf("Updated task %q", task.Title), nil)
	return task, nil
}

// Complete marks a task done. Completing an already-done task is a no-op
// update and still succeeds.
func (s *TaskService) Complete(userID, id uint) (*models.Task, error) {
	task, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(task).Update("completed", true).Error; err != nil {
		return nil, err
	}

	s.Activities.LogActivity(userID, task.ApplicationID, models.ActivityUpdated,
		fmt.Sprintf("Completed task %q", task.Title), nil)
	return task, nil
}

func (s *TaskService) Delete(userID, id uint) error {
	task, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(task).Error; err != nil {
		return err
	}

	s.Activities.LogActivity(userID, task.ApplicationID, models.ActivityDeleted,
		fmt.Sprintf("Deleted task %q", task.Title), nil)
	return nil
}
