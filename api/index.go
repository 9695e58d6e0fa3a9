package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"shoe-store/config"
	_ "shoe-store/docs"
	"shoe-store/routes"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.ConnectRedis()

		themes, err := config.LoadTheme(config.AppConfig.ThemeFile)
		if err != nil {
			initErr = err
			return
		}

		router, initErr = routes.NewEngine(themes)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		log.Printf("startup failed: %v", initErr)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
