package usecases

import (
	"errors"
	"todo-server/entities"
	"todo-server/repositories"

	"github.com/sirupsen/logrus"
)

// ErrTaskNotFound covers both a missing task and a task owned by
// someone else. The two cases must stay indistinguishable outward.
var ErrTaskNotFound = errors.New("todo not found")

type TaskUseCase struct {
	TaskRepo repositories.TaskRepository
	Log      *logrus.Logger
}

func NewTaskUseCase(taskRepo repositories.TaskRepository, log *logrus.Logger) *TaskUseCase {
	return &TaskUseCase{TaskRepo: taskRepo, Log: log}
}

// CreateTask validates the description and persists a new task owned
// by ownerID.
func (uc *TaskUseCase) CreateTask(description, ownerID string) (*entities.Task, error) {
	task, err := entities.NewTask(description, ownerID)
	if err != nil {
		return nil, err
	}
	if err := uc.TaskRepo.Create(task); err != nil {
		uc.Log.WithError(err).WithField("user_id", ownerID).Error("failed to create task")
		return nil, err
	}
	return task, nil
}

// ListTasks returns the owner's tasks, newest first.
func (uc *TaskUseCase) ListTasks(ownerID string) ([]entities.Task, error) {
	return uc.TaskRepo.GetByOwner(ownerID)
}

// AuthorizeMutation loads the task only if the actor owns it. Missing
// and foreign-owned tasks both come back as ErrTaskNotFound.
func (uc *TaskUseCase) AuthorizeMutation(actorID, taskID string) (*entities.Task, error) {
	task, err := uc.TaskRepo.GetByIDAndOwner(taskID, actorID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		uc.Log.WithFields(logrus.Fields{"user_id": actorID, "task_id": taskID}).
			Warn("task mutation denied")
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// ToggleTask flips completion on a task the actor owns.
func (uc *TaskUseCase) ToggleTask(actorID, taskID string) (*entities.Task, error) {
	task, err := uc.AuthorizeMutation(actorID, taskID)
	if err != nil {
		return nil, err
	}

	task.ToggleCompletion()
	if err := uc.TaskRepo.Update(task); err != nil {
		uc.Log.WithError(err).WithField("task_id", task.ID).Error("failed to update task")
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task the actor owns.
func (uc *TaskUseCase) DeleteTask(actorID, taskID string) error {
	task, err := uc.AuthorizeMutation(actorID, taskID)
	if err != nil {
		return err
	}

	if err := uc.TaskRepo.Delete(task); err != nil {
		uc.Log.WithError(err).WithField("task_id", task.ID).Error("failed to delete task")
		return err
	}
	return nil
}
