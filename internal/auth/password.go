package auth

import (
	"errors"
	"regexp"
	"slices"

	"github.com/careerpilot/careerpilot/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a plaintext password against a stored hash.
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// ValidateEmail checks the email shape against an RFC 5322 style pattern.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateStage reports whether a stage value is one of the nine pipeline stages.
func ValidateStage(stage string) bool {
	_, ok := models.StageTimestampColumns[models.Stage(stage)]
	return ok
}

// ValidateInterviewType checks an interview type against the known set.
func ValidateInterviewType(interviewType string) bool {
	validTypes := []string{"PHONE", "VIDEO", "ONSITE", "TECHNICAL", "BEHAVIORAL", "OTHER"}
	return slices.Contains(validTypes, interviewType)
}

// ValidateOfferStatus checks an offer status against the known set.
func ValidateOfferStatus(status string) bool {
	validStatuses := []string{"PENDING", "ACCEPTED", "DECLINED", "EXPIRED"}
	return slices.Contains(validStatuses, status)
}

// ValidateEmailProvider checks an email integration provider name.
func ValidateEmailProvider(provider string) bool {
	validProviders := []string{"gmail", "outlook"}
	return slices.Contains(validProviders, provider)
}
