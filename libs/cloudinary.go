package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const coverFolder = "book-covers"

var ErrCloudinaryNotConfigured = errors.New("cloudinary credentials not configured")

// CoverUploader stores book cover images and returns their public URL.
type CoverUploader interface {
	UploadCover(ctx context.Context, file io.Reader, filename string) (url string, publicID string, err error)
	DeleteCover(ctx context.Context, publicID string) error
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryFromEnv prefers CLOUDINARY_CLOUD_NAME/API_KEY/API_SECRET
// and falls back to CLOUDINARY_URL.
func NewCloudinaryFromEnv() (*CloudinaryUploader, error) {
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

// CoverPublicID derives a unique public id from the upload name.
func CoverPublicID(filename string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
	if base == "" || base == "." {
		base = "cover"
	}
	return fmt.Sprintf("%d_%s", now.Unix(), base)
}

func (u *CloudinaryUploader) UploadCover(ctx context.Context, file io.Reader, filename string) (string, string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       CoverPublicID(filename, time.Now()),
		Folder:         coverFolder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if result == nil || result.SecureURL == "" {
		return "", "", errors.New("cloudinary response is empty")
	}

	log.Printf("[Cloudinary] Uploaded cover %s", result.PublicID)
	return result.SecureURL, result.PublicID, nil
}

func (u *CloudinaryUploader) DeleteCover(ctx context.Context, publicID string) error {
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
