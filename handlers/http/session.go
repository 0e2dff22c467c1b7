package httpHandler

import (
	"encoding/gob"
	"net/http"
	"todo-server/entities"
	"todo-server/usecases"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserKey = "user_id"
	ctxUserKey     = "currentUser"
)

// flashMessage is a one-shot notice carried through the session, like
// the flash() of classic server-rendered apps.
type flashMessage struct {
	Category string
	Text     string
}

func init() {
	// The cookie store serializes session values with gob.
	gob.Register(flashMessage{})
}

// establishSession binds the session to the user. Any prior session
// state is dropped first, so a login never inherits an old binding.
func establishSession(c *gin.Context, user *entities.User) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionUserKey, user.ID)
	return session.Save()
}

// endSession clears the binding, returning the session to anonymous.
func endSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

func addFlash(c *gin.Context, category, text string) {
	session := sessions.Default(c)
	session.AddFlash(flashMessage{Category: category, Text: text})
	// A failed save only loses the notice, not the request.
	_ = session.Save()
}

// takeFlashes drains pending flash messages for rendering.
func takeFlashes(c *gin.Context) []flashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}

	var flashes []flashMessage
	for _, f := range raw {
		if m, ok := f.(flashMessage); ok {
			flashes = append(flashes, m)
		}
	}
	return flashes
}

// sessionUser resolves the user bound to the session, or nil when the
// session is anonymous or the binding no longer resolves.
func sessionUser(c *gin.Context, auth *usecases.AuthUseCase) *entities.User {
	session := sessions.Default(c)
	id, ok := session.Get(sessionUserKey).(string)
	if !ok || id == "" {
		return nil
	}
	user, err := auth.GetUser(id)
	if err != nil {
		return nil
	}
	return user
}

// RequireAuth guards a route group. Anonymous requests are redirected
// to the login page with a notice instead of failing loudly; a stale
// binding (user deleted mid-session) is cleared on the way out.
func RequireAuth(auth *usecases.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := sessionUser(c, auth); user != nil {
			c.Set(ctxUserKey, user)
			c.Next()
			return
		}

		session := sessions.Default(c)
		session.Clear()
		session.AddFlash(flashMessage{Category: "info", Text: "Please log in to access this page."})
		_ = session.Save()

		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

// currentUser returns the actor resolved by RequireAuth.
func currentUser(c *gin.Context) *entities.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if user, ok := v.(*entities.User); ok {
			return user
		}
	}
	return nil
}
