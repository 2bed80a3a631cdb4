package dtos

import "time"

type CompanyCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

type CompanyUpdateRequest struct {
	Name     *string `json:"name"`
	Website  *string `json:"website"`
	Industry *string `json:"industry"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

type ContactCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	CompanyID *uint  `json:"company_id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Notes     string `json:"notes"`
}

type ContactUpdateRequest struct {
	Name      *string `json:"name"`
	CompanyID *uint   `json:"company_id"`
	Role      *string `json:"role"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	LinkedIn  *string `json:"linkedin"`
	Notes     *string `json:"notes"`
}

type TaskCreateRequest struct {
	Title         string     `json:"title" binding:"required"`
	ApplicationID *uint      `json:"application_id"`
	Notes         string     `json:"notes"`
	DueAt         *time.Time `json:"due_at"`
}

type TaskUpdateRequest struct {
	Title *string    `json:"title"`
	Notes *string    `json:"notes"`
	DueAt *time.Time `json:"due_at"`
}

type EmailConnectRequest struct {
	Provider     string     `json:"provider" binding:"required"`
	Address      string     `json:"address" binding:"required"`
	AccessToken  string     `json:"access_token" binding:"required"`
	RefreshToken string     `json:"refresh_token"`
	Expiry       *time.Time `json:"expiry"`
}
