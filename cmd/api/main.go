package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"library-backend/pkg/logger"
)

func main() {
	// .env is for local development. Production uses real environment
	// variables, so a missing file is fine.
	loadErr := godotenv.Load()

	env := getEnv("APP_ENV", "development")
	logger.Init(env)

	if loadErr != nil {
		logger.Debug("no .env file found, using system environment")
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
