package libs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var ErrCloudinaryNotConfigured = errors.New("cloudinary credentials not configured")

const shoeImageFolder = "shoes"

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader uses CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and
// CLOUDINARY_API_SECRET, or CLOUDINARY_URL when those are not all set.
func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName != "" && apiKey != "" && apiSecret != "" {
		cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from params fail: %w", err)
		}
		return &CloudinaryUploader{cld: cld}, nil
	}

	cldURL := os.Getenv("CLOUDINARY_URL")
	if cldURL == "" {
		return nil, ErrCloudinaryNotConfigured
	}

	cld, err := cloudinary.NewFromURL(cldURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL fail: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadShoeImage uploads the image under the shoes folder and returns its URL.
func (u *CloudinaryUploader) UploadShoeImage(ctx context.Context, file multipart.File, slug, filename string) (string, error) {
	publicID := fmt.Sprintf("%s_%s", slug, uuid.NewString())
	log.Printf("[cloudinary] uploading %s as %s/%s", filename, shoeImageFolder, publicID)

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         shoeImageFolder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return "", errors.New("cloudinary response is nil")
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", errors.New("cloudinary returned no URL")
}

// DeleteShoeImage removes a previously uploaded shoe image given its delivery
// URL. URLs outside the shoes folder are left alone.
func (u *CloudinaryUploader) DeleteShoeImage(ctx context.Context, imageURL string) error {
	publicID := ShoeImagePublicID(imageURL)
	if publicID == "" {
		return nil
	}
	log.Printf("[cloudinary] deleting %s", publicID)
	return u.DeleteImage(ctx, publicID)
}

// ShoeImagePublicID extracts "shoes/<id>" from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v17/shoes/felix_1f2e.jpg.
// It returns "" when the URL is not a shoe image upload.
func ShoeImagePublicID(imageURL string) string {
	_, rest, found := strings.Cut(imageURL, "/image/upload/")
	if !found {
		return ""
	}

	segments := strings.Split(rest, "/")
	for i, seg := range segments {
		if seg == shoeImageFolder {
			name := strings.Join(segments[i+1:], "/")
			name = strings.TrimSuffix(name, path.Ext(name))
			if name == "" {
				return ""
			}
			return shoeImageFolder + "/" + name
		}
	}
	return ""
}

func (u *CloudinaryUploader) DeleteImage(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	result, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
