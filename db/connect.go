package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"todo-server/entities"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database described by the environment. DB_URL or
// the discrete DB_* variables select Postgres; with neither set the
// app falls back to a local SQLite file, which is enough for
// development and matches the zero-config default of the app.
func Connect() (Database, error) {
	dbURL := os.Getenv("DB_URL")
	dbHost := os.Getenv("DB_HOST")

	var dialector gorm.Dialector

	switch {
	case dbURL != "":
		// Hosted databases usually require SSL; add it if the URL lacks it.
		if !strings.Contains(dbURL, "sslmode=") {
			if strings.Contains(dbURL, "?") {
				dbURL += "&sslmode=require"
			} else {
				dbURL += "?sslmode=require"
			}
		}
		log.Println("Connecting to Postgres using DB_URL...")
		dialector = postgres.Open(dbURL)

	case dbHost != "":
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		if dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
			return nil, fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}

		sslMode := "require"
		if dbHost == "localhost" || dbHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			dbHost, dbUser, dbPassword, dbName, dbPort, sslMode)
		log.Printf("Connecting to Postgres using individual parameters (sslmode=%s)...", sslMode)
		dialector = postgres.Open(dsn)

	default:
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "todo.db"
		}
		log.Printf("No Postgres configuration found, using SQLite file %s", path)
		dialector = sqlite.Open(path)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	log.Println("Database connection established and migrated")

	return &GormDatabase{DB: gdb}, nil
}

// Migrate creates the schema. Besides AutoMigrate it adds a unique
// index over LOWER(username), the backstop that keeps two concurrent
// registrations of the same name (in any casing) from both inserting.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&entities.User{}, &entities.Task{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := gdb.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users (LOWER(username))").Error; err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}
