package main

import (
	"todo-server/confs"
	"todo-server/db"
	"todo-server/server"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		logger.Fatalf("Error loading config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// connect to database
	database, err := db.Connect()
	if err != nil {
		logger.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database, cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
