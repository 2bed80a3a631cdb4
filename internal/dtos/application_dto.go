package dtos

import "time"

type ApplicationCreateRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Title       string `json:"title" binding:"required"`

	// Optional fields
	JobLink     string `json:"job_link"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	Notes       string `json:"notes"`
	Stage       string `json:"stage"` // defaults to "DISCOVERED" if empty
}

// Pointer fields so PATCH can tell "absent" from "set to zero value".
type ApplicationUpdateRequest struct {
	Title       *string `json:"title"`
	JobLink     *string `json:"job_link"`
	Location    *string `json:"location"`
	SalaryRange *string `json:"salary_range"`
	Notes       *string `json:"notes"`
	Stage       *string `json:"stage"`
}

type InterviewCreateRequest struct {
	Type        string    `json:"type" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	DurationMin int       `json:"duration_min"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
}

type InterviewUpdateRequest struct {
	Type        *string    `json:"type"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	DurationMin *int       `json:"duration_min"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
}

type OfferCreateRequest struct {
	Salary   string     `json:"salary"`
	Equity   string     `json:"equity"`
	Bonus    string     `json:"bonus"`
	Deadline *time.Time `json:"deadline"`
	Status   string     `json:"status"` // defaults to "PENDING" if empty
	Notes    string     `json:"notes"`
}

type OfferUpdateRequest struct {
	Salary   *string    `json:"salary"`
	Equity   *string    `json:"equity"`
	Bonus    *string    `json:"bonus"`
	Deadline *time.Time `json:"deadline"`
	Status   *string    `json:"status"`
	Notes    *string    `json:"notes"`
}

type AttachmentCreateRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}
