package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"shoe-store/config"
	_ "shoe-store/docs"
	"shoe-store/routes"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.ConnectRedis()
	defer config.CloseRedis()

	themes, err := config.LoadTheme(config.AppConfig.ThemeFile)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}
	themes.EnableHotReload()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router, err := routes.NewEngine(themes)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Recency window: %d days", config.AppConfig.RecencyWindowDays)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
