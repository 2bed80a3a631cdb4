package services

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/careerpilot/careerpilot/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "careerpilot.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Application{},
		&models.Contact{},
		&models.Interview{},
		&models.Offer{},
		&models.Task{},
		&models.Activity{},
		&models.Attachment{},
		&models.EmailConnection{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedApplication(t *testing.T, db *gorm.DB, stage models.Stage) (models.User, models.Application) {
	t.Helper()
	user := models.User{Email: "dev@example.com", Name: "Dev", Password: "hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	company := models.Company{UserID: user.ID, Name: "Acme"}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("create company: %v", err)
	}
	app := models.Application{UserID: user.ID, CompanyID: company.ID, Title: "Backend Engineer", Stage: stage}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("create application: %v", err)
	}
	return user, app
}

func reloadApplication(t *testing.T, db *gorm.DB, id uint) models.Application {
	t.Helper()
	var app models.Application
	if err := db.First(&app, id).Error; err != nil {
		t.Fatalf("reload application: %v", err)
	}
	return app
}

// stageTimestamp reads the timestamp field the given stage maps to.
func stageTimestamp(t *testing.T, app models.Application, stage models.Stage) *time.Time {
	t.Helper()
	switch stage {
	case models.StageDiscovered:
		return app.DiscoveredAt
	case models.StageApplied:
		return app.AppliedAt
	case models.StagePhoneScreen:
		return app.PhoneAt
	case models.StageTechnical:
		return app.TechAt
	case models.StageOnsite:
		return app.OnsiteAt
	case models.StageOffer:
		return app.OfferAt
	case models.StageAccepted:
		return app.AcceptedAt
	case models.StageRejected, models.StageWithdrawn:
		return app.RejectedAt
	default:
		t.Fatalf("unknown stage %q", stage)
		return nil
	}
}

func TestLogStageChange_WritesOneActivityPerTransition(t *testing.T) {
	db := testDB(t)
	svc := NewActivityService(db)
	user, app := seedApplication(t, db, models.StageDiscovered)

	for _, oldStage := range models.Stages {
		for _, newStage := range models.Stages {
			if oldStage == newStage {
				continue
			}

			var before int64
			db.Model(&models.Activity{}).Where("type = ?", models.ActivityStageChanged).Count(&before)

			if err := svc.LogStageChange(user.ID, app.ID, oldStage, newStage); err != nil {
				t.Fatalf("LogStageChange(%s, %s): %v", oldStage, newStage, err)
			}

			var after int64
			db.Model(&models.Activity{}).Where("type = ?", models.ActivityStageChanged).Count(&after)
			if after != before+1 {
				t.Fatalf("transition %s -> %s: expected 1 new activity, got %d", oldStage, newStage, after-before)
			}

			var activity models.Activity
			if err := db.Where("type = ?", models.ActivityStageChanged).Order("id DESC").First(&activity).Error; err != nil {
				t.Fatalf("load activity: %v", err)
			}
			if !strings.Contains(activity.Description, string(oldStage)) || !strings.Contains(activity.Description, string(newStage)) {
				t.Fatalf("description %q missing stage names %s/%s", activity.Description, oldStage, newStage)
			}
			if activity.ApplicationID == nil || *activity.ApplicationID != app.ID {
				t.Fatalf("activity not tied to application %d", app.ID)
			}
		}
	}
}

func TestLogStageChange_StampsMappedTimestamp(t *testing.T) {
	for _, newStage := range models.Stages {
		oldStage := models.StageDiscovered
		if newStage == oldStage {
			oldStage = models.StageApplied
		}

		db := testDB(t)
		svc := NewActivityService(db)
		user, app := seedApplication(t, db, oldStage)

		before := time.Now().Add(-time.Second)
		if err := svc.LogStageChange(user.ID, app.ID, oldStage, newStage); err != nil {
			t.Fatalf("LogStageChange to %s: %v", newStage, err)
		}

		got := reloadApplication(t, db, app.ID)
		stamp := stageTimestamp(t, got, newStage)
		if stamp == nil {
			t.Fatalf("stage %s: mapped timestamp not set", newStage)
		}
		if stamp.Before(before) {
			t.Fatalf("stage %s: timestamp %v earlier than call time %v", newStage, stamp, before)
		}
	}
}

func TestLogStageChange_ReentryOverwritesTimestamp(t *testing.T) {
	db := testDB(t)
	svc := NewActivityService(db)
	user, app := seedApplication(t, db, models.StageDiscovered)

	if err := svc.LogStageChange(user.ID, app.ID, models.StageDiscovered, models.StageApplied); err != nil {
		t.Fatalf("first transition: %v", err)
	}
	first := stageTimestamp(t, reloadApplication(t, db, app.ID), models.StageApplied)
	if first == nil {
		t.Fatal("applied_at not set after first transition")
	}

	time.Sleep(1200 * time.Millisecond)

	// Regress and re-enter: last entry wins, not first entry.
	if err := svc.LogStageChange(user.ID, app.ID, models.StagePhoneScreen, models.StageApplied); err != nil {
		t.Fatalf("re-entry: %v", err)
	}
	second := stageTimestamp(t, reloadApplication(t, db, app.ID), models.StageApplied)
	if second == nil {
		t.Fatal("applied_at cleared on re-entry")
	}
	if !second.After(*first) {
		t.Fatalf("re-entry did not refresh timestamp: first=%v second=%v", first, second)
	}
}

func TestRejectedAndWithdrawnShareRejectedAt(t *testing.T) {
	for _, terminal := range []models.Stage{models.StageRejected, models.StageWithdrawn} {
		db := testDB(t)
		svc := NewActivityService(db)
		user, app := seedApplication(t, db, models.StageApplied)

		if err := svc.LogStageChange(user.ID, app.ID, models.StageApplied, terminal); err != nil {
			t.Fatalf("transition to %s: %v", terminal, err)
		}

		got := reloadApplication(t, db, app.ID)
		if got.RejectedAt == nil {
			t.Fatalf("%s: rejected_at not set", terminal)
		}
		for _, other := range []*time.Time{got.DiscoveredAt, got.AppliedAt, got.PhoneAt, got.TechAt, got.OnsiteAt, got.OfferAt, got.AcceptedAt} {
			if other != nil {
				t.Fatalf("%s: wrote a timestamp other than rejected_at", terminal)
			}
		}
	}
}

func TestLogStageChange_ActivityFailureDoesNotBlock(t *testing.T) {
	db := testDB(t)
	svc := NewActivityService(db)
	user, app := seedApplication(t, db, models.StageDiscovered)

	// Simulated audit-log fault: the activities table is gone.
	if err := db.Migrator().DropTable(&models.Activity{}); err != nil {
		t.Fatalf("drop activities: %v", err)
	}

	if err := svc.LogStageChange(user.ID, app.ID, models.StageDiscovered, models.StageApplied); err != nil {
		t.Fatalf("expected stage change to survive activity failure, got: %v", err)
	}

	got := reloadApplication(t, db, app.ID)
	if got.AppliedAt == nil {
		t.Fatal("applied_at not set despite activity failure")
	}
}

func TestLogStageChange_TimestampFailurePropagates(t *testing.T) {
	db := testDB(t)
	svc := NewActivityService(db)
	user, app := seedApplication(t, db, models.StageDiscovered)

	// Simulated storage fault on the primary mutation path.
	if err := db.Migrator().DropTable(&models.Application{}); err != nil {
		t.Fatalf("drop applications: %v", err)
	}

	if err := svc.LogStageChange(user.ID, app.ID, models.StageDiscovered, models.StageApplied); err == nil {
		t.Fatal("expected timestamp update failure to propagate")
	}
}

func TestStageChange_DiscoveredToApplied(t *testing.T) {
	db := testDB(t)
	activities := NewActivityService(db)
	apps := NewApplicationService(db, activities)

	user := models.User{Email: "dev@example.com", Name: "Dev", Password: "hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	created, err := apps.Create(user.ID, applicationFixture())
	if err != nil {
		t.Fatalf("create application: %v", err)
	}
	discoveredAt := created.DiscoveredAt

	if err := activities.LogStageChange(user.ID, created.ID, models.StageDiscovered, models.StageApplied); err != nil {
		t.Fatalf("LogStageChange: %v", err)
	}

	got := reloadApplication(t, db, created.ID)
	if got.AppliedAt == nil {
		t.Fatal("applied_at not set")
	}
	if (discoveredAt == nil) != (got.DiscoveredAt == nil) {
		t.Fatal("discovered_at presence changed by transition")
	}
	if discoveredAt != nil && !got.DiscoveredAt.Equal(*discoveredAt) {
		t.Fatalf("discovered_at changed: was %v, now %v", discoveredAt, got.DiscoveredAt)
	}

	var count int64
	db.Model(&models.Activity{}).
		Where("type = ? AND description = ?", models.ActivityStageChanged, "Stage changed from DISCOVERED to APPLIED").
		Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one stage-change activity, got %d", count)
	}
}

func TestStageChange_SkippedStagesNotBackfilled(t *testing.T) {
	db := testDB(t)
	svc := NewActivityService(db)
	user, app := seedApplication(t, db, models.StageDiscovered)

	if err := svc.LogStageChange(user.ID, app.ID, models.StageDiscovered, models.StageTechnical); err != nil {
		t.Fatalf("LogStageChange: %v", err)
	}

	got := reloadApplication(t, db, app.ID)
	if got.TechAt == nil {
		t.Fatal("tech_at not set")
	}
	if got.AppliedAt != nil || got.PhoneAt != nil {
		t.Fatal("skipped intermediate stages were back-filled")
	}
}

func TestLogActivity_AccountLevel(t *testing.T) {
	db := testDB(t)
	svc := NewActivityService(db)

	user := models.User{Email: "dev@example.com", Name: "Dev", Password: "hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc.LogActivity(user.ID, nil, models.ActivityEmailDisconnected,
		"Disconnected gmail account dev@example.com",
		map[string]string{"provider": "gmail"})

	var activity models.Activity
	if err := db.Where("user_id = ?", user.ID).First(&activity).Error; err != nil {
		t.Fatalf("load activity: %v", err)
	}
	if activity.ApplicationID != nil {
		t.Fatal("account-level activity should have no application id")
	}
	if !strings.Contains(activity.Metadata, "gmail") {
		t.Fatalf("metadata not serialized: %q", activity.Metadata)
	}
}
