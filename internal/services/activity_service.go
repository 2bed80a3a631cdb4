package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/careerpilot/careerpilot/internal/models"
	"gorm.io/gorm"
)

// ActivityService owns the append-only activity log and the stage lifecycle
// bookkeeping on applications.
type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

// LogActivity appends one immutable activity row. applicationID may be nil
// for account-level events (e.g. disconnecting an email integration).
//
// This is best-effort: a failed insert is logged to the server log and
// swallowed so an audit failure can never block the mutation that caused it.
func (s *ActivityService) LogActivity(userID uint, applicationID *uint, activityType, description string, metadata map[string]string) {
	activity := models.Activity{
		UserID:        userID,
		ApplicationID: applicationID,
		Type:          activityType,
		Description:   description,
	}

	if len(metadata) > 0 {
		raw, err := json.Marshal(metadata)
		if err != nil {
			log.Printf("activity metadata marshal failed (type=%s user=%d): %v", activityType, userID, err)
		} else {
			activity.Metadata = string(raw)
		}
	}

	if err := s.DB.Create(&activity).Error; err != nil {
		log.Printf("activity log failed (type=%s user=%d): %v", activityType, userID, err)
	}
}

// LogStageChange records a stage transition: one STAGE_CHANGED activity plus
// a refresh of the timestamp column mapped to newStage. Re-entering a stage
// overwrites its timestamp (last entry wins); skipped stages are never
// back-filled. The caller has already verified ownership and that the stages
// differ.
//
// The activity write is best-effort; the timestamp update is not, and its
// error is returned to the caller.
func (s *ActivityService) LogStageChange(userID, applicationID uint, oldStage, newStage models.Stage) error {
	s.LogActivity(userID, &applicationID, models.ActivityStageChanged,
		fmt.Sprintf("Stage changed from %s to %s", oldStage, newStage),
		map[string]string{"oldStage": string(oldStage), "newStage": string(newStage)})

	column, ok := models.StageTimestampColumns[newStage]
	if !ok {
		return fmt.Errorf("unknown stage: %s", newStage)
	}

	return s.DB.Model(&models.Application{}).
		Where("id = ?", applicationID).
		Update(column, time.Now()).Error
}

// ListForUser returns the user's activities, newest first.
func (s *ActivityService) ListForUser(userID uint, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	q := s.DB.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&activities).Error
	return activities, err
}

// ListForApplication returns one application's activities, newest first. The
// owner filter keeps another user's application indistinguishable from a
// missing one.
func (s *ActivityService) ListForApplication(userID, applicationID uint) ([]models.Activity, error) {
	var app models.Application
	if err := s.DB.Select("id").Where("id = ? AND user_id = ?", applicationID, userID).First(&app).Error; err != nil {
		return nil, err
	}

	var activities []models.Activity
	err := s.DB.Where("application_id = ?", applicationID).
		Order("created_at DESC, id DESC").
		Find(&activities).Error
	return activities, err
}
