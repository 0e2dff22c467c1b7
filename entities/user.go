package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// usernamePattern matches the only characters allowed in a username.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// User represents an account that owns tasks. Username uniqueness is
// case-insensitive and enforced by the repository.
type User struct {
	ID           string    `gorm:"type:text;primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return
}

// NewUser validates the username, hashes the password and returns an
// unpersisted user.
func NewUser(username, password string) (*User, error) {
	username, err := ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	user := &User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// ValidateUsername trims the raw value and checks format requirements.
// The returned value is what must be stored; uniqueness comparison
// stays case-insensitive in the repository.
func ValidateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)

	if username == "" {
		return "", NewValidationError("username is required")
	}
	if len(username) < 3 {
		return "", NewValidationError("username must be at least 3 characters long")
	}
	if len(username) > 80 {
		return "", NewValidationError("username must be no more than 80 characters long")
	}
	if !usernamePattern.MatchString(username) {
		return "", NewValidationError("username can only contain letters, numbers, and underscores")
	}

	return username, nil
}

// SetPassword hashes and sets the user's password. bcrypt salts every
// hash, so hashing the same password twice yields different digests.
func (u *User) SetPassword(raw string) error {
	password := strings.TrimSpace(raw)
	if len(password) < 6 {
		return NewValidationError("password must be at least 6 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the candidate matches the stored hash.
// It never errors; an empty candidate is always a mismatch.
func (u *User) CheckPassword(candidate string) bool {
	if candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(candidate))) == nil
}
