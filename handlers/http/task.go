package httpHandler

import (
	"errors"
	"net/http"
	"strings"
	"todo-server/entities"
	"todo-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TaskHandler struct {
	useCase *usecases.TaskUseCase
	log     *logrus.Logger
}

func NewTaskHandler(useCase *usecases.TaskUseCase, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{useCase: useCase, log: log}
}

// Index handles GET / and lists the current user's tasks, newest first.
func (h *TaskHandler) Index(c *gin.Context) {
	user := currentUser(c)

	tasks, err := h.useCase.ListTasks(user.ID)
	if err != nil {
		h.log.WithError(err).WithField("user_id", user.ID).Error("failed to list tasks")
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"User":  user,
			"Error": "An error occurred while loading your todos. Please try again.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"User":    user,
		"Tasks":   tasks,
		"Flashes": takeFlashes(c),
	})
}

// Add handles POST /add
func (h *TaskHandler) Add(c *gin.Context) {
	user := currentUser(c)
	description := c.PostForm("description")

	if _, err := h.useCase.CreateTask(description, user.ID); err != nil {
		var verr *entities.ValidationError
		if errors.As(err, &verr) {
			addFlash(c, "error", capitalize(verr.Error())+".")
		} else {
			addFlash(c, "error", "An error occurred while adding the todo. Please try again.")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	addFlash(c, "success", "Todo added successfully!")
	c.Redirect(http.StatusFound, "/")
}

// Toggle handles POST /toggle/:id
func (h *TaskHandler) Toggle(c *gin.Context) {
	user := currentUser(c)

	task, err := h.useCase.ToggleTask(user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrTaskNotFound) {
			addFlash(c, "error", "Todo not found or you don't have permission to modify it.")
		} else {
			addFlash(c, "error", "An error occurred while updating the todo. Please try again.")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	status := "incomplete"
	if task.Completed {
		status = "completed"
	}
	addFlash(c, "success", "Todo marked as "+status+"!")
	c.Redirect(http.StatusFound, "/")
}

// Delete handles POST /delete/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	user := currentUser(c)

	if err := h.useCase.DeleteTask(user.ID, c.Param("id")); err != nil {
		if errors.Is(err, usecases.ErrTaskNotFound) {
			addFlash(c, "error", "Todo not found or you don't have permission to delete it.")
		} else {
			addFlash(c, "error", "An error occurred while deleting the todo. Please try again.")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	addFlash(c, "success", "Todo deleted successfully!")
	c.Redirect(http.StatusFound, "/")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
