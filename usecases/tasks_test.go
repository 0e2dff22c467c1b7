package usecases

import (
	"testing"
	"todo-server/db"
	"todo-server/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskFixture(t *testing.T) (*TaskUseCase, *AuthUseCase, db.Database) {
	t.Helper()
	database := newTestDB(t)
	auth := NewAuthUseCase(repositories.NewUserPgRepository(database), testLogger())
	tasks := NewTaskUseCase(repositories.NewTaskPgRepository(database), testLogger())
	return tasks, auth, database
}

func TestCreateTaskValidatesDescription(t *testing.T) {
	uc, auth, _ := newTaskFixture(t)
	user, err := auth.Register("carol", "secret1", "secret1")
	require.NoError(t, err)

	task, err := uc.CreateTask("  Buy milk  ", user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Description)
	assert.False(t, task.Completed)
	assert.Equal(t, user.ID, task.UserID)

	_, err = uc.CreateTask("", user.ID)
	require.Error(t, err)
	assert.Equal(t, "todo description is required", err.Error())

	_, err = uc.CreateTask("   ", user.ID)
	require.Error(t, err)
	assert.Equal(t, "todo description cannot be empty or only whitespace", err.Error())
}

func TestListTasksReturnsOnlyOwnTasks(t *testing.T) {
	uc, auth, _ := newTaskFixture(t)
	carol, err := auth.Register("carol", "secret1", "secret1")
	require.NoError(t, err)
	dave, err := auth.Register("dave", "secret1", "secret1")
	require.NoError(t, err)

	_, err = uc.CreateTask("carol's task", carol.ID)
	require.NoError(t, err)
	_, err = uc.CreateTask("dave's task", dave.ID)
	require.NoError(t, err)

	tasks, err := uc.ListTasks(carol.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "carol's task", tasks[0].Description)
}

func TestAuthorizeMutationUniformFailure(t *testing.T) {
	uc, auth, _ := newTaskFixture(t)
	carol, err := auth.Register("carol", "secret1", "secret1")
	require.NoError(t, err)
	dave, err := auth.Register("dave", "secret1", "secret1")
	require.NoError(t, err)

	task, err := uc.CreateTask("carol's task", carol.ID)
	require.NoError(t, err)

	// Owner is authorized.
	got, err := uc.AuthorizeMutation(carol.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	// A foreign task and a nonexistent task fail identically.
	_, foreignErr := uc.AuthorizeMutation(dave.ID, task.ID)
	_, missingErr := uc.AuthorizeMutation(dave.ID, uuid.NewString())
	assert.ErrorIs(t, foreignErr, ErrTaskNotFound)
	assert.ErrorIs(t, missingErr, ErrTaskNotFound)
	assert.Equal(t, foreignErr, missingErr)
}

func TestToggleTask(t *testing.T) {
	uc, auth, _ := newTaskFixture(t)
	carol, err := auth.Register("carol", "secret1", "secret1")
	require.NoError(t, err)

	task, err := uc.CreateTask("Buy milk", carol.ID)
	require.NoError(t, err)

	toggled, err := uc.ToggleTask(carol.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = uc.ToggleTask(carol.ID, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestToggleTaskDeniedForForeignActor(t *testing.T) {
	uc, auth, _ := newTaskFixture(t)
	carol, err := auth.Register("carol", "secret1", "secret1")
	require.NoError(t, err)
	dave, err := auth.Register("dave", "secret1", "secret1")
	require.NoError(t, err)

	task, err := uc.CreateTask("Buy milk", carol.ID)
	require.NoError(t, err)

	_, err = uc.ToggleTask(dave.ID, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	// Untouched for the owner.
	listed, err := uc.ListTasks(carol.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].Completed)
}

func TestDeleteTask(t *testing.T) {
	uc, auth, _ := newTaskFixture(t)
	carol, err := auth.Register("carol", "secret1", "secret1")
	require.NoError(t, err)
	dave, err := auth.Register("dave", "secret1", "secret1")
	require.NoError(t, err)

	task, err := uc.CreateTask("Buy milk", carol.ID)
	require.NoError(t, err)

	// Foreign delete fails uniformly and leaves the task in place.
	err = uc.DeleteTask(dave.ID, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	require.NoError(t, uc.DeleteTask(carol.ID, task.ID))

	tasks, err := uc.ListTasks(carol.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Deleting again reports not found.
	err = uc.DeleteTask(carol.ID, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
