package repositories

import (
	"errors"
	"todo-server/entities"
)

// ErrDuplicateUsername is returned by UserRepository.Create when the
// username is already taken under case-insensitive comparison.
var ErrDuplicateUsername = errors.New("username already exists")

type UserRepository interface {
	Create(user *entities.User) error
	GetByUsername(username string) (*entities.User, error)
	GetByID(id string) (*entities.User, error)
	Delete(user *entities.User) error
}

type TaskRepository interface {
	Create(task *entities.Task) error
	GetByOwner(ownerID string) ([]entities.Task, error)
	GetByIDAndOwner(id, ownerID string) (*entities.Task, error)
	Update(task *entities.Task) error
	Delete(task *entities.Task) error
}
