package services

import (
	"errors"
	"testing"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"gorm.io/gorm"
)

func TestTaskCompleteAndFilter(t *testing.T) {
	db := testDB(t)
	activities := NewActivityService(db)
	tasks := NewTaskService(db, activities)
	user := seedUser(t, db, "dev@example.com")

	created, err := tasks.Create(user.ID, &dtos.TaskCreateRequest{Title: "Send follow-up email"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.Completed {
		t.Fatal("new task already completed")
	}

	if _, err := tasks.Create(user.ID, &dtos.TaskCreateRequest{Title: "Prepare for phone screen"}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	done, err := tasks.Complete(user.ID, created.ID)
	if err != nil {
		t.Fatalf("complete task: %v", err)
	}
	if !done.Completed {
		t.Fatal("task not marked completed")
	}

	completed := true
	list, err := tasks.List(user.ID, &completed)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("completed filter returned %d tasks", len(list))
	}

	open := false
	list, err = tasks.List(user.ID, &open)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("open filter returned %d tasks", len(list))
	}
}

func TestTaskCreate_ForeignApplicationRejected(t *testing.T) {
	db := testDB(t)
	activities := NewActivityService(db)
	apps := NewApplicationService(db, activities)
	tasks := NewTaskService(db, activities)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	app, err := apps.Create(owner.ID, applicationFixture())
	if err != nil {
		t.Fatalf("create application: %v", err)
	}

	_, err = tasks.Create(other.ID, &dtos.TaskCreateRequest{Title: "Snoop", ApplicationID: &app.ID})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found linking to foreign application, got: %v", err)
	}
}
