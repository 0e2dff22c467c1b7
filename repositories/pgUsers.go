package repositories

import (
	"errors"
	"todo-server/db"
	"todo-server/entities"

	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

// Create inserts the user unless the username is already taken in any
// casing. The check and the insert run in one transaction; the unique
// index on LOWER(username) catches the race two concurrent
// registrations would otherwise win together.
func (r *userPgRepository) Create(user *entities.User) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&entities.User{}).
			Where("LOWER(username) = LOWER(?)", user.Username).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateUsername
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateUsername
			}
			return err
		}
		return nil
	})
}

// GetByUsername looks the user up case-insensitively. A missing user
// is (nil, nil), not an error.
func (r *userPgRepository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("LOWER(username) = LOWER(?)", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user and every task they own in one transaction,
// so no partial state is ever visible.
func (r *userPgRepository) Delete(user *entities.User) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&entities.Task{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", user.ID).Delete(&entities.User{}).Error
	})
}
