package main

import (
	_ "voicehub/docs"
	"voicehub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Restaurant Voice Hub API
// @version         1.0
// @description     Order-taking and dashboard backend for a restaurant voice assistant, backed by DynamoDB.

// @host localhost:8001

// @BasePath  /

func main() {
	routes.Run()
}
