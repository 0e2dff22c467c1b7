package repositories

import (
	"errors"
	"todo-server/db"
	"todo-server/entities"

	"gorm.io/gorm"
)

type taskPgRepository struct {
	db db.Database
}

func NewTaskPgRepository(database db.Database) TaskRepository {
	return &taskPgRepository{db: database}
}

func (r *taskPgRepository) Create(task *entities.Task) error {
	return r.db.GetDB().Create(task).Error
}

// GetByOwner returns the owner's tasks, most recent first.
func (r *taskPgRepository) GetByOwner(ownerID string) ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.GetDB().Where("user_id = ?", ownerID).Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// GetByIDAndOwner returns (nil, nil) both when the task does not exist
// and when it belongs to someone else. Callers cannot tell the two
// apart, which keeps other users' task ids unguessable.
func (r *taskPgRepository) GetByIDAndOwner(id, ownerID string) (*entities.Task, error) {
	var task entities.Task
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, ownerID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskPgRepository) Update(task *entities.Task) error {
	return r.db.GetDB().Save(task).Error
}

func (r *taskPgRepository) Delete(task *entities.Task) error {
	return r.db.GetDB().Where("id = ?", task.ID).Delete(&entities.Task{}).Error
}
