package usecases

import (
	"errors"
	"strings"
	"todo-server/entities"
	"todo-server/repositories"

	"github.com/sirupsen/logrus"
)

// ErrAccountCreation is the generic message shown when persistence
// fails during registration; the real cause only goes to the log.
var ErrAccountCreation = errors.New("an error occurred while creating the account")

type AuthUseCase struct {
	UserRepo repositories.UserRepository
	Log      *logrus.Logger
}

func NewAuthUseCase(userRepo repositories.UserRepository, log *logrus.Logger) *AuthUseCase {
	return &AuthUseCase{UserRepo: userRepo, Log: log}
}

// Register creates a new account. Validation runs before anything is
// persisted; the error text is safe to show to the user verbatim.
// Registering does not log the user in.
func (uc *AuthUseCase) Register(username, password, passwordConfirm string) (*entities.User, error) {
	if password != passwordConfirm {
		return nil, entities.NewValidationError("passwords do not match")
	}

	user, err := entities.NewUser(username, password)
	if err != nil {
		return nil, err
	}

	if err := uc.UserRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, repositories.ErrDuplicateUsername
		}
		uc.Log.WithError(err).Error("failed to create user")
		return nil, ErrAccountCreation
	}

	uc.Log.WithField("username", user.Username).Info("user registered")
	return user, nil
}

// Authenticate returns the user when both lookup and password check
// succeed, otherwise (nil, nil). Unknown username and wrong password
// are indistinguishable to the caller. Malformed input never errors.
func (uc *AuthUseCase) Authenticate(username, password string) (*entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, nil
	}

	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, nil
	}

	uc.Log.WithField("username", user.Username).Info("user authenticated")
	return user, nil
}

// GetUser resolves a session-bound user id. A stale id (user deleted
// mid-session) is (nil, nil); callers treat that as not authenticated.
func (uc *AuthUseCase) GetUser(id string) (*entities.User, error) {
	if id == "" {
		return nil, nil
	}
	return uc.UserRepo.GetByID(id)
}

// DeleteAccount removes the user and all their tasks atomically.
func (uc *AuthUseCase) DeleteAccount(user *entities.User) error {
	if err := uc.UserRepo.Delete(user); err != nil {
		uc.Log.WithError(err).WithField("user_id", user.ID).Error("failed to delete account")
		return err
	}
	uc.Log.WithField("username", user.Username).Info("account deleted")
	return nil
}
