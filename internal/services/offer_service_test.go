package services

import (
	"errors"
	"testing"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"gorm.io/gorm"
)

func TestOfferCreate_OnePerApplication(t *testing.T) {
	db := testDB(t)
	activities := NewActivityService(db)
	apps := NewApplicationService(db, activities)
	offers := NewOfferService(db, activities)
	user := seedUser(t, db, "dev@example.com")

	app, err := apps.Create(user.ID, applicationFixture())
	if err != nil {
		t.Fatalf("create application: %v", err)
	}

	offer, err := offers.Create(user.ID, app.ID, &dtos.OfferCreateRequest{Salary: "120000"})
	if err != nil {
		t.Fatalf("create offer: %v", err)
	}
	if offer.Status != "PENDING" {
		t.Fatalf("default status = %q", offer.Status)
	}

	if _, err := offers.Create(user.ID, app.ID, &dtos.OfferCreateRequest{Salary: "130000"}); !errors.Is(err, ErrOfferExists) {
		t.Fatalf("expected ErrOfferExists, got: %v", err)
	}
}

func TestOfferCreate_ForeignApplicationNotFound(t *testing.T) {
	db := testDB(t)
	activities := NewActivityService(db)
	apps := NewApplicationService(db, activities)
	offers := NewOfferService(db, activities)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	app, err := apps.Create(owner.ID, applicationFixture())
	if err != nil {
		t.Fatalf("create application: %v", err)
	}

	if _, err := offers.Create(other.ID, app.ID, &dtos.OfferCreateRequest{}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for foreign application, got: %v", err)
	}
}

func TestOfferUpdate_OwnedThroughApplication(t *testing.T) {
	db := testDB(t)
	activities := NewActivityService(db)
	apps := NewApplicationService(db, activities)
	offers := NewOfferService(db, activities)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	app, err := apps.Create(owner.ID, applicationFixture())
	if err != nil {
		t.Fatalf("create application: %v", err)
	}
	offer, err := offers.Create(owner.ID, app.ID, &dtos.OfferCreateRequest{Salary: "120000"})
	if err != nil {
		t.Fatalf("create offer: %v", err)
	}

	status := "ACCEPTED"
	if _, err := offers.Update(other.ID, offer.ID, &dtos.OfferUpdateRequest{Status: &status}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for foreign offer, got: %v", err)
	}

	updated, err := offers.Update(owner.ID, offer.ID, &dtos.OfferUpdateRequest{Status: &status})
	if err != nil {
		t.Fatalf("update offer: %v", err)
	}
	if updated.Status != "ACCEPTED" {
		t.Fatalf("status = %q after update", updated.Status)
	}
}
