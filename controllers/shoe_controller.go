package controllers

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shoe-store/models"
	"shoe-store/services"
	"shoe-store/utils"
	"shoe-store/views"
)

// ShoeCatalog is what the shoe controller needs from the service layer.
type ShoeCatalog interface {
	ListCards(ctx context.Context, page, limit int) ([]views.ShoeCard, models.MetaData, error)
	GetCard(ctx context.Context, slug string) (*views.ShoeCard, error)
	Card(shoe models.Shoe) views.ShoeCard
	CreateShoe(ctx context.Context, req models.CreateShoeRequest) (*models.Shoe, error)
	UpdateShoe(ctx context.Context, slug string, req models.UpdateShoeRequest) (*models.Shoe, error)
	SetImage(ctx context.Context, slug, imageSrc string) (*models.Shoe, error)
	DeleteShoe(ctx context.Context, slug string) error
}

// ImageUploader stores shoe images off-box. When none is configured the
// controller keeps images under the local upload directory.
type ImageUploader interface {
	UploadShoeImage(ctx context.Context, file multipart.File, slug, filename string) (string, error)
	DeleteShoeImage(ctx context.Context, imageURL string) error
}

const localUploadPrefix = "/uploads/"

type ShoeController struct {
	shoes         ShoeCatalog
	renderer      *views.Renderer
	images        ImageUploader
	uploadDir     string
	maxUploadSize int64
}

func NewShoeController(shoes ShoeCatalog, renderer *views.Renderer, images ImageUploader, uploadDir string, maxUploadSize int64) *ShoeController {
	return &ShoeController{
		shoes:         shoes,
		renderer:      renderer,
		images:        images,
		uploadDir:     uploadDir,
		maxUploadSize: maxUploadSize,
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// @Summary List shoe cards
// @Description Get a paginated list of shoe cards with their display variant
// @Tags Shoes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /shoes [get]
func (ctrl *ShoeController) ListShoes(c *gin.Context) {
	page, limit := pageParams(c)

	cards, meta, err := ctrl.shoes.ListCards(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Shoes retrieved",
		Data:    cards,
		Meta:    meta,
	})
}

// @Summary Get shoe card
// @Description Get the card of one shoe
// @Tags Shoes
// @Produce json
// @Param slug path string true "Shoe slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /shoes/{slug} [get]
func (ctrl *ShoeController) GetShoe(c *gin.Context) {
	card, err := ctrl.shoes.GetCard(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Shoe retrieved", Data: card})
}

// @Summary Render shoe card
// @Description Render the card of one shoe as an HTML fragment
// @Tags Shoes
// @Produce html
// @Param slug path string true "Shoe slug"
// @Success 200 {string} string
// @Failure 404 {object} models.ErrorResponse
// @Router /shoes/{slug}/card [get]
func (ctrl *ShoeController) RenderShoeCard(c *gin.Context) {
	card, err := ctrl.shoes.GetCard(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := ctrl.renderer.RenderCard(*card)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// @Summary Render catalog page
// @Description Render a page of shoe cards as HTML
// @Tags Shoes
// @Produce html
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {string} string
// @Router /catalog [get]
func (ctrl *ShoeController) RenderCatalog(c *gin.Context) {
	page, limit := pageParams(c)

	cards, meta, err := ctrl.shoes.ListCards(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := ctrl.renderer.RenderCatalog("Shoe Catalog", cards, meta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// @Summary Create shoe
// @Description Add a shoe to the catalog (Admin)
// @Tags Admin - Shoes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param shoe body models.CreateShoeRequest true "Shoe"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/shoes [post]
func (ctrl *ShoeController) CreateShoe(c *gin.Context) {
	var req models.CreateShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	shoe, err := ctrl.shoes.CreateShoe(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[shoes] created %s", shoe.Slug)
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Shoe created successfully", Data: ctrl.shoes.Card(*shoe)})
}

// @Summary Update shoe
// @Description Partially update a shoe; clear_sale_price ends a sale (Admin)
// @Tags Admin - Shoes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param slug path string true "Shoe slug"
// @Param shoe body models.UpdateShoeRequest true "Fields to change"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/shoes/{slug} [patch]
func (ctrl *ShoeController) UpdateShoe(c *gin.Context) {
	var req models.UpdateShoeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		return
	}

	shoe, err := ctrl.shoes.UpdateShoe(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[shoes] updated %s", shoe.Slug)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Shoe updated successfully", Data: ctrl.shoes.Card(*shoe)})
}

// @Summary Delete shoe
// @Description Remove a shoe from the catalog (Admin)
// @Tags Admin - Shoes
// @Security BearerAuth
// @Produce json
// @Param slug path string true "Shoe slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/shoes/{slug} [delete]
func (ctrl *ShoeController) DeleteShoe(c *gin.Context) {
	slug := c.Param("slug")
	if err := ctrl.shoes.DeleteShoe(c.Request.Context(), slug); err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[shoes] deleted %s", slug)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Shoe deleted"})
}

// @Summary Upload shoe image
// @Description Upload the card image of a shoe (Admin)
// @Tags Admin - Shoes
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Shoe slug"
// @Param image formData file true "Shoe image"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/shoes/{slug}/image [post]
func (ctrl *ShoeController) UploadShoeImage(c *gin.Context) {
	slug := c.Param("slug")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Image file is required", Error: err.Error()})
		return
	}
	if err := utils.ValidateImage(fileHeader, ctrl.maxUploadSize); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	// make sure the shoe exists before storing anything
	previous, err := ctrl.shoes.GetCard(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	imageSrc, err := ctrl.storeImage(c, fileHeader, slug)
	if err != nil {
		log.Printf("[shoes] image upload failed for %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to save image", Error: err.Error()})
		return
	}

	shoe, err := ctrl.shoes.SetImage(c.Request.Context(), slug, imageSrc)
	if err != nil {
		ctrl.removeImage(c.Request.Context(), imageSrc)
		respondError(c, err)
		return
	}
	if previous.ImageSrc != imageSrc {
		ctrl.removeImage(c.Request.Context(), previous.ImageSrc)
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Image uploaded", Data: ctrl.shoes.Card(*shoe)})
}

func (ctrl *ShoeController) storeImage(c *gin.Context, fileHeader *multipart.FileHeader, slug string) (string, error) {
	if ctrl.images == nil {
		path, err := utils.UploadFile(c, fileHeader, ctrl.uploadDir, "shoes")
		if err != nil {
			return "", err
		}
		return localUploadPrefix + path, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	return ctrl.images.UploadShoeImage(c.Request.Context(), file, slug, fileHeader.Filename)
}

// removeImage deletes an image this service stored earlier. Failures are
// only logged.
func (ctrl *ShoeController) removeImage(ctx context.Context, imageSrc string) {
	var err error
	switch {
	case imageSrc == "":
		return
	case strings.HasPrefix(imageSrc, localUploadPrefix):
		err = utils.DeleteFile(ctrl.uploadDir, strings.TrimPrefix(imageSrc, localUploadPrefix))
	case ctrl.images != nil:
		err = ctrl.images.DeleteShoeImage(ctx, imageSrc)
	}
	if err != nil {
		log.Printf("[shoes] removing image %s failed: %v", imageSrc, err)
	}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrShoeNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Shoe not found"})
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "Slug already in use"})
	case errors.Is(err, services.ErrInvalidSlug), errors.Is(err, services.ErrInvalidShoe):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid shoe", Error: err.Error()})
	default:
		log.Printf("[shoes] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Internal server error"})
	}
}
