package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shoe-store/controllers"
	"shoe-store/handler"
	"shoe-store/middleware"
)

type Handlers struct {
	Shoes     *controllers.ShoeController
	Auth      *controllers.AuthController
	JWTSecret string
	UploadDir string
}

func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/login", h.Auth.Login)

	router.GET("/shoes", h.Shoes.ListShoes)
	router.GET("/shoes/:slug", h.Shoes.GetShoe)
	router.GET("/shoes/:slug/card", h.Shoes.RenderShoeCard)
	router.GET("/catalog", h.Shoes.RenderCatalog)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.JWTSecret), middleware.AdminMiddleware())
	{
		admin.POST("/shoes", h.Shoes.CreateShoe)
		admin.PATCH("/shoes/:slug", h.Shoes.UpdateShoe)
		admin.DELETE("/shoes/:slug", h.Shoes.DeleteShoe)
		admin.POST("/shoes/:slug/image", h.Shoes.UploadShoeImage)
	}

	if h.UploadDir != "" {
		router.Static("/uploads", h.UploadDir)
	}
}
