package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const MaxCoverSize = 5 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateCoverImage checks the size and extension of an uploaded cover.
func ValidateCoverImage(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxCoverSize {
		return errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return errors.New("invalid file type. Only images are allowed")
	}
	return nil
}
