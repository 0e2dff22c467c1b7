package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a todo item. It belongs to exactly one user for its entire
// life; UserID never changes after creation.
type Task struct {
	ID          string    `gorm:"type:text;primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return
}

// NewTask validates the description and returns an unpersisted task
// owned by the given user.
func NewTask(description, userID string) (*Task, error) {
	description, err := ValidateDescription(description)
	if err != nil {
		return nil, err
	}

	return &Task{
		Description: description,
		Completed:   false,
		UserID:      userID,
	}, nil
}

// ValidateDescription trims the raw value and checks length limits.
// Empty input and whitespace-only input fail with distinct messages.
func ValidateDescription(raw string) (string, error) {
	if raw == "" {
		return "", NewValidationError("todo description is required")
	}

	description := strings.TrimSpace(raw)

	if description == "" {
		return "", NewValidationError("todo description cannot be empty or only whitespace")
	}
	if utf8.RuneCountInString(description) > 200 {
		return "", NewValidationError("todo description must be no more than 200 characters long")
	}

	return description, nil
}

// ToggleCompletion flips the completion status. Persistence is the
// caller's job.
func (t *Task) ToggleCompletion() {
	t.Completed = !t.Completed
}
