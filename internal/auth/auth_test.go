package auth

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "dev@example.com", "Dev")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "dev@example.com" || claims.Name != "Dev" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseToken_RejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "dev@example.com", "Dev")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Setenv("JWT_SECRET", "different-secret")
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := CheckPassword("hunter2hunter2", hash); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := CheckPassword("wrong-password", hash); err == nil {
		t.Fatal("expected wrong password to fail")
	}
}

func TestValidateStage(t *testing.T) {
	valid := []string{"DISCOVERED", "APPLIED", "PHONE_SCREEN", "TECHNICAL", "ONSITE", "OFFER", "ACCEPTED", "REJECTED", "WITHDRAWN"}
	for _, stage := range valid {
		if !ValidateStage(stage) {
			t.Fatalf("stage %q rejected", stage)
		}
	}
	for _, stage := range []string{"", "applied", "INTERVIEW", "GHOSTED"} {
		if ValidateStage(stage) {
			t.Fatalf("stage %q accepted", stage)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("dev@example.com") {
		t.Fatal("valid email rejected")
	}
	for _, email := range []string{"", "not-an-email", "@example.com", "dev@"} {
		if ValidateEmail(email) {
			t.Fatalf("email %q accepted", email)
		}
	}
}
