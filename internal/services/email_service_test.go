package services

import (
	"testing"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/models"
)

func TestEmailConnectDisconnect(t *testing.T) {
	db := testDB(t)
	activities := NewActivityService(db)
	email := NewEmailService(db, activities)
	user := seedUser(t, db, "dev@example.com")

	conn, err := email.Connect(user.ID, &dtos.EmailConnectRequest{
		Provider:    "gmail",
		Address:     "dev@example.com",
		AccessToken: "ya29.token",
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	token, err := email.Token(conn)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token.AccessToken != "ya29.token" {
		t.Fatalf("token round trip lost access token: %q", token.AccessToken)
	}

	// Reconnecting the same provider refreshes the row instead of adding one.
	if _, err := email.Connect(user.ID, &dtos.EmailConnectRequest{
		Provider:    "gmail",
		Address:     "dev@example.com",
		AccessToken: "ya29.newer",
	}); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	conns, err := email.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(conns) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(conns))
	}

	if err := email.Disconnect(user.ID, conns[0].ID); err != nil {
		t.Fatalf("disconnect: %v", err)
	}

	var activity models.Activity
	err = db.Where("user_id = ? AND type = ?", user.ID, models.ActivityEmailDisconnected).
		First(&activity).Error
	if err != nil {
		t.Fatalf("load disconnect activity: %v", err)
	}
	if activity.ApplicationID != nil {
		t.Fatal("disconnect activity should be account-level")
	}
}
