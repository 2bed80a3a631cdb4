package services

import (
	"fmt"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentService tracks file metadata for an application. The bytes live
// in object storage under the generated storage key; this service never
// touches them.
type AttachmentService struct {
	DB         *gorm.DB
	Activities *ActivityService
}

func NewAttachmentService(db *gorm.DB, activities *ActivityService) *AttachmentService {
	return &AttachmentService{DB: db, Activities: activities}
}

func (s *AttachmentService) Create(userID, applicationID uint, req *dtos.AttachmentCreateRequest) (*models.Attachment, error) {
	app, err := ownedApplication(s.DB, userID, applicationID)
	if err != nil {
		return nil, err
	}

	attachment := &models.Attachment{
		ApplicationID: app.ID,
		FileName:      req.FileName,
		StorageKey:    uuid.NewString(),
		ContentType:   req.ContentType,
		SizeBytes:     req.SizeBytes,
	}
	if err := s.DB.Create(attachment).Error; err != nil {
		return nil, err
	}

	s.Activities.LogActivity(userID, &app.ID, models.ActivityCreated,
		fmt.Sprintf("Attached %s to %s", attachment.FileName, app.Title), nil)
	return attachment, nil
}

func (s *AttachmentService) List(userID, applicationID uint) ([]models.Attachment, error) {
	app, err := ownedApplication(s.DB, userID, applicationID)
	if err != nil {
		return nil, err
	}

	var attachments []models.Attachment
	err = s.DB.Where("application_id = ?", app.ID).
		Order("created_at DESC").
		Find(&attachments).Error
	return attachments, err
}

func (s *AttachmentService) Delete(userID, id uint) error {
	var attachment models.Attachment
	err := s.DB.Joins("JOIN applications ON applications.id = attachments.application_id").
		Where("attachments.id = ? AND applications.user_id = ?", id, userID).
		First(&attachment).Error
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&attachment).Error; err != nil {
		return err
	}

	s.Activities.LogActivity(userID, &attachment.ApplicationID, models.ActivityDeleted,
		fmt.Sprintf("Removed attachment %s", attachment.FileName), nil)
	return nil
}
