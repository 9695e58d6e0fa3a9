package routes

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"shoe-store/config"
	"shoe-store/controllers"
	"shoe-store/libs"
	"shoe-store/middleware"
	"shoe-store/repositories"
	"shoe-store/services"
	"shoe-store/utils"
	"shoe-store/views"
)

const shoeListCacheTTL = 5 * time.Minute

// NewEngine wires the catalog on top of the connections opened by the
// config package. config.LoadConfig and config.ConnectDB must run first;
// redis is optional.
func NewEngine(themes *config.ThemeStore) (*gin.Engine, error) {
	cfg := config.AppConfig

	prices, err := utils.NewPriceFormatterFromLocale(cfg.PriceLocale, cfg.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICE_LOCALE %q: %w", cfg.PriceLocale, err)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse card templates: %w", err)
	}

	var images controllers.ImageUploader
	uploader, err := libs.NewCloudinaryUploader()
	switch {
	case err == nil:
		images = uploader
		log.Println("Shoe images are stored on Cloudinary")
	case errors.Is(err, libs.ErrCloudinaryNotConfigured):
		log.Printf("Shoe images are stored under %s", cfg.UploadDir)
	default:
		return nil, err
	}

	store := repositories.NewCachedShoeStore(repositories.NewShoeRepository(config.DB), config.RedisClient, shoeListCacheTTL)
	shoeService := services.NewShoeService(store, themes, prices, cfg.RecencyWindowDays)
	authService := services.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	SetupRoutes(router, Handlers{
		Shoes:     controllers.NewShoeController(shoeService, renderer, images, cfg.UploadDir, cfg.MaxUploadSize),
		Auth:      controllers.NewAuthController(authService),
		JWTSecret: cfg.JWTSecret,
		UploadDir: cfg.UploadDir,
	})
	return router, nil
}
