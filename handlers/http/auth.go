package httpHandler

import (
	"net/http"
	"todo-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase *usecases.AuthUseCase
	log     *logrus.Logger
}

func NewAuthHandler(useCase *usecases.AuthUseCase, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: log}
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if sessionUser(c, h.useCase) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "register.html", gin.H{"Flashes": takeFlashes(c)})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	if sessionUser(c, h.useCase) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")
	passwordConfirm := c.PostForm("password_confirm")

	_, err := h.useCase.Register(username, password, passwordConfirm)
	if err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error":    err.Error() + ".",
			"Username": username,
			"Flashes":  takeFlashes(c),
		})
		return
	}

	addFlash(c, "success", "Registration successful! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if sessionUser(c, h.useCase) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Flashes": takeFlashes(c)})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	if sessionUser(c, h.useCase) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.useCase.Authenticate(username, password)
	if err != nil {
		h.log.WithError(err).Error("login lookup failed")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "An error occurred. Please try again.",
		})
		return
	}
	if user == nil {
		// Same response for unknown user and wrong password.
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error":    "Invalid username or password. Please try again.",
			"Username": username,
			"Flashes":  takeFlashes(c),
		})
		return
	}

	if err := establishSession(c, user); err != nil {
		h.log.WithError(err).Error("failed to establish session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "An error occurred. Please try again.",
		})
		return
	}

	addFlash(c, "success", "Welcome back, "+user.Username+"!")
	c.Redirect(http.StatusFound, "/")
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	user := currentUser(c)

	if err := endSession(c); err != nil {
		h.log.WithError(err).Error("failed to end session")
	}
	if user != nil {
		addFlash(c, "info", "You have been logged out, "+user.Username+".")
	}
	c.Redirect(http.StatusFound, "/login")
}
