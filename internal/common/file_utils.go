package common

import (
	"fmt"
	"io/fs"
	"time"
)

// StdinPath is the input path that selects standard input
const StdinPath = "-"

// FileInfo contains metadata about a file
type FileInfo struct {
	Path        string      // Full file path
	Name        string      // File name only
	Size        int64       // File size in bytes
	IsDir       bool        // Whether it's a directory
	ModTime     time.Time   // Last modification time
	Permissions fs.FileMode // File permissions
}

// FileReadOptions configures file reading behavior
type FileReadOptions struct {
	MaxSize int64 // Maximum number of bytes to read (0 = no limit)
}

// ContentSizeValidator validates content size against limits
type ContentSizeValidator struct {
	maxSizeBytes int64
}

// NewContentSizeValidator creates a new content size validator; 0 disables the check
func NewContentSizeValidator(maxSizeBytes int64) *ContentSizeValidator {
	return &ContentSizeValidator{
		maxSizeBytes: maxSizeBytes,
	}
}

// ValidateSize checks a single size against the limit
func (csv *ContentSizeValidator) ValidateSize(fieldName string, size int64) error {
	if csv.maxSizeBytes > 0 && size > csv.maxSizeBytes {
		return NewValidationError(fieldName, size,
			fmt.Sprintf("%s too large (%d bytes > %d bytes limit)", fieldName, size, csv.maxSizeBytes))
	}
	return nil
}
