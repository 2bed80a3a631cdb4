package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// EmailService manages mailbox integrations. It stores the oauth2 token for
// a connected account; one connection per provider per user.
type EmailService struct {
	DB         *gorm.DB
	Activities *ActivityService
}

func NewEmailService(db *gorm.DB, activities *ActivityService) *EmailService {
	return &EmailService{DB: db, Activities: activities}
}

// Connect stores (or refreshes) a mailbox connection. The token is kept as
// an opaque serialized blob until a sync needs it.
func (s *EmailService) Connect(userID uint, req *dtos.EmailConnectRequest) (*models.EmailConnection, error) {
	token := &oauth2.Token{
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		TokenType:    "Bearer",
	}
	if req.Expiry != nil {
		token.Expiry = *req.Expiry
	}
	raw, err := json.Marshal(token)
	if err != nil {
		return nil, err
	}

	var conn models.EmailConnection
	err = s.DB.Where("user_id = ? AND provider = ?", userID, req.Provider).First(&conn).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{"address": req.Address, "token": string(raw)}
		if err := s.DB.Model(&conn).Updates(updates).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		conn = models.EmailConnection{
			UserID:   userID,
			Provider: req.Provider,
			Address:  req.Address,
			Token:    string(raw),
		}
		if err := s.DB.Create(&conn).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.Activities.LogActivity(userID, nil, models.ActivityEmailConnected,
		fmt.Sprintf("Connected %s account %s", conn.Provider, conn.Address), nil)
	return &conn, nil
}

func (s *EmailService) List(userID uint) ([]models.EmailConnection, error) {
	var conns []models.EmailConnection
	err := s.DB.Where("user_id = ?", userID).Order("provider ASC").Find(&conns).Error
	return conns, err
}

// Disconnect removes a connection and leaves an account-level activity (no
// application id) behind.
func (s *EmailService) Disconnect(userID, id uint) error {
	var conn models.EmailConnection
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&conn).Error; err != nil {
		return err
	}
	if err := s.DB.Delete(&conn).Error; err != nil {
		return err
	}

	s.Activities.LogActivity(userID, nil, models.ActivityEmailDisconnected,
		fmt.Sprintf("Disconnected %s account %s", conn.Provider, conn.Address), nil)
	return nil
}

// Token deserializes a connection's stored oauth2 token.
func (s *EmailService) Token(conn *models.EmailConnection) (*oauth2.Token, error) {
	token := &oauth2.Token{}
	if err := json.Unmarshal([]byte(conn.Token), token); err != nil {
		return nil, err
	}
	return token, nil
}
