package server

import (
	"todo-server/confs"
	"todo-server/db"
	httpHandler "todo-server/handlers/http"
	"todo-server/repositories"
	"todo-server/usecases"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
	log *logrus.Logger
}

func NewServer(database db.Database, cfg *confs.Config, log *logrus.Logger) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
		log: log,
	}
}

// Start wires the routes and runs the HTTP server.
func (s *Server) Start() error {
	SetupRouter(s.app, s.db, s.cfg, s.log)
	return s.app.Run(":" + s.cfg.Port)
}

// SetupRouter registers middleware and the full route table on app.
// Split out of Start so tests can run the real routing stack.
func SetupRouter(app *gin.Engine, database db.Database, cfg *confs.Config, log *logrus.Logger) {
	app.LoadHTMLGlob(cfg.TemplatesGlob)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
	})
	app.Use(sessions.Sessions("todo_session", store))

	// Setup healthcheck route
	app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(database)
	taskRepo := repositories.NewTaskPgRepository(database)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, log)
	taskUseCase := usecases.NewTaskUseCase(taskRepo, log)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase, log)
	taskHandler := httpHandler.NewTaskHandler(taskUseCase, log)

	// Public auth routes
	app.GET("/register", authHandler.ShowRegister)
	app.POST("/register", authHandler.Register)
	app.GET("/login", authHandler.ShowLogin)
	app.POST("/login", authHandler.Login)

	// Everything else requires an authenticated session
	protected := app.Group("/")
	protected.Use(httpHandler.RequireAuth(authUseCase))
	{
		protected.GET("", taskHandler.Index)
		protected.POST("add", taskHandler.Add)
		protected.POST("toggle/:id", taskHandler.Toggle)
		protected.POST("delete/:id", taskHandler.Delete)
		protected.POST("logout", authHandler.Logout)
	}
}
