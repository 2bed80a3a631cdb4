package models

import (
	"time"
)

// Stage is one discrete position in the application pipeline.
type Stage string

const (
	StageDiscovered  Stage = "DISCOVERED"
	StageApplied     Stage = "APPLIED"
	StagePhoneScreen Stage = "PHONE_SCREEN"
	StageTechnical   Stage = "TECHNICAL"
	StageOnsite      Stage = "ONSITE"
	StageOffer       Stage = "OFFER"
	StageAccepted    Stage = "ACCEPTED"
	StageRejected    Stage = "REJECTED"
	StageWithdrawn   Stage = "WITHDRAWN"
)

// Stages lists the pipeline stages in board order.
var Stages = []Stage{
	StageDiscovered,
	StageApplied,
	StagePhoneScreen,
	StageTechnical,
	StageOnsite,
	StageOffer,
	StageAccepted,
	StageRejected,
	StageWithdrawn,
}

// Activity types written by the handlers and the stage tracker.
const (
	ActivityStageChanged      = "STAGE_CHANGED"
	ActivityCreated           = "CREATED"
	ActivityUpdated           = "UPDATED"
	ActivityDeleted           = "DELETED"
	ActivityNoteAdded         = "NOTE_ADDED"
	ActivityEmailConnected    = "EMAIL_CONNECTED"
	ActivityEmailDisconnected = "EMAIL_DISCONNECTED"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Password string `gorm:"not null" json:"-"`

	Companies        []Company         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"companies,omitempty"`
	Applications     []Application     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"applications,omitempty"`
	Contacts         []Contact         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"contacts,omitempty"`
	Tasks            []Task            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tasks,omitempty"`
	Activities       []Activity        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	EmailConnections []EmailConnection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID   uint   `gorm:"index:idx_companies_user_name,unique;not null" json:"user_id"`
	Name     string `gorm:"index:idx_companies_user_name,unique;not null" json:"name"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
	Location string `json:"location"`
	Notes    string `gorm:"type:text" json:"notes"`

	// 'omitempty' prevents infinite loops when fetching an Application -> Company -> Applications -> ...
	Applications []Application `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"applications,omitempty"`
	Contacts     []Contact     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"contacts,omitempty"`
}

// UserID is denormalized alongside the Company relation so every lookup can
// filter on the owner without a join.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint    `gorm:"index;not null" json:"user_id"`
	CompanyID uint    `gorm:"index;not null" json:"company_id"`
	Company   Company `json:"company,omitempty"`

	Title       string `gorm:"not null" json:"title"`
	JobLink     string `json:"job_link"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	Notes       string `gorm:"type:text" json:"notes"`
	Stage       Stage  `gorm:"type:varchar(16);default:'DISCOVERED'" json:"stage"`

	// One nullable timestamp per stage the application may have passed
	// through. WITHDRAWN shares rejected_at. Never cleared on regression.
	DiscoveredAt *time.Time `json:"discovered_at"`
	AppliedAt    *time.Time `json:"applied_at"`
	PhoneAt      *time.Time `json:"phone_at"`
	TechAt       *time.Time `json:"tech_at"`
	OnsiteAt     *time.Time `json:"onsite_at"`
	OfferAt      *time.Time `json:"offer_at"`
	AcceptedAt   *time.Time `json:"accepted_at"`
	RejectedAt   *time.Time `json:"rejected_at"`

	Interviews  []Interview  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"interviews,omitempty"`
	Offer       *Offer       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"offer,omitempty"`
	Tasks       []Task       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tasks,omitempty"`
	Activities  []Activity   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"activities,omitempty"`
	Attachments []Attachment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"attachments,omitempty"`
}

// StageTimestampColumns maps each stage to the Application column stamped
// when that stage is entered. Adding a stage is a one-line table edit.
var StageTimestampColumns = map[Stage]string{
	StageDiscovered:  "discovered_at",
	StageApplied:     "applied_at",
	StagePhoneScreen: "phone_at",
	StageTechnical:   "tech_at",
	StageOnsite:      "onsite_at",
	StageOffer:       "offer_at",
	StageAccepted:    "accepted_at",
	StageRejected:    "rejected_at",
	StageWithdrawn:   "rejected_at",
}

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint  `gorm:"index;not null" json:"user_id"`
	CompanyID *uint `gorm:"index" json:"company_id"`

	Name     string `gorm:"not null" json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Notes    string `gorm:"type:text" json:"notes"`
}

type Interview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ApplicationID uint `gorm:"index;not null" json:"application_id"`

	Type        string    `gorm:"not null" json:"type"`
	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`
	Location    string    `json:"location"`
	Notes       string    `gorm:"type:text" json:"notes"`
}

type Offer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ApplicationID uint `gorm:"uniqueIndex;not null" json:"application_id"`

	Salary   string     `json:"salary"`
	Equity   string     `json:"equity"`
	Bonus    string     `json:"bonus"`
	Deadline *time.Time `json:"deadline"`
	Status   string     `gorm:"default:'PENDING'" json:"status"`
	Notes    string     `gorm:"type:text" json:"notes"`
}

type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID        uint  `gorm:"index;not null" json:"user_id"`
	ApplicationID *uint `gorm:"index" json:"application_id"`

	Title     string     `gorm:"not null" json:"title"`
	Notes     string     `gorm:"type:text" json:"notes"`
	DueAt     *time.Time `json:"due_at"`
	Completed bool       `gorm:"default:false" json:"completed"`
}

// Activity is an immutable audit-log row. It has no UpdatedAt on purpose:
// rows are inserted once and only ever removed by cascade.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID        uint  `gorm:"index;not null" json:"user_id"`
	ApplicationID *uint `gorm:"index" json:"application_id"`

	Type        string `gorm:"not null" json:"type"`
	Description string `gorm:"type:text" json:"description"`
	Metadata    string `gorm:"type:text" json:"metadata,omitempty"`
}

type Attachment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ApplicationID uint `gorm:"index;not null" json:"application_id"`

	FileName    string `gorm:"not null" json:"file_name"`
	StorageKey  string `gorm:"uniqueIndex;not null" json:"storage_key"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

type EmailConnection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID   uint   `gorm:"index:idx_email_conn_user_provider,unique;not null" json:"user_id"`
	Provider string `gorm:"index:idx_email_conn_user_provider,unique;not null" json:"provider"`
	Address  string `gorm:"not null" json:"address"`
	// Serialized oauth2 token. Never interpreted outside the email service.
	Token string `gorm:"type:text" json:"-"`
}
