package utils

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrFileTooLarge     = errors.New("file size exceeds maximum allowed size")
	ErrInvalidImageType = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func ValidateImage(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader.Size > maxSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return ErrInvalidImageType
	}
	return nil
}

// ImageFileName returns a collision free name that keeps the original extension.
func ImageFileName(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

// UploadFile stores an already validated image under uploadDir/subDir and
// returns the path relative to uploadDir.
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, uploadDir, subDir string) (string, error) {
	uploadPath := filepath.Join(uploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	filename := ImageFileName(fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadPath, filename)); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(subDir, filename)), nil
}

var ErrOutsideUploadDir = errors.New("path escapes the upload directory")

// DeleteFile removes uploadDir/filePath. A missing file is not an error.
func DeleteFile(uploadDir, filePath string) error {
	if !filepath.IsLocal(filepath.FromSlash(filePath)) {
		return ErrOutsideUploadDir
	}

	err := os.Remove(filepath.Join(uploadDir, filepath.FromSlash(filePath)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
