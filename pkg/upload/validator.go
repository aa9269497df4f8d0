// Package upload validates installation documents before anything touches
// storage. Limits mirror what the admin UI enforces.
package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxFileSize is 20 MiB. A stale "5MB" figure survives in old email copy;
// this constant is the enforced limit everywhere.
const MaxFileSize = 20 * 1024 * 1024

// ErrInvalidType carries the exact message the admin UI shows inline.
var ErrInvalidType = errors.New("Invalid file type. Only PDF, JPEG, PNG, and Word documents are allowed.")

var allowedTypes = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/jpg":          true,
	"image/png":          true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

// ValidateDocument checks the declared content type and size of an uploaded
// installation document. It must run before any storage write or status
// change.
func ValidateDocument(fh *multipart.FileHeader) error {
	if fh == nil {
		return errors.New("document file is required")
	}

	contentType := fh.Header.Get("Content-Type")
	// Some clients omit the part content type; fall back to the extension.
	if contentType == "" {
		if !allowedExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
			return ErrInvalidType
		}
	} else if !allowedTypes[contentType] {
		return ErrInvalidType
	}

	if fh.Size > MaxFileSize {
		return fmt.Errorf("File size must be less than %dMB", MaxFileSize/(1024*1024))
	}

	return nil
}
