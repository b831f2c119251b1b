package common

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileManager reads comparison inputs from files or standard input
type FileManager struct {
	logger zerolog.Logger
	stdin  io.Reader
	memory *MemoryChecker
}

// NewFileManager creates a new FileManager instance reading "-" from os.Stdin
func NewFileManager(logger zerolog.Logger) *FileManager {
	return NewFileManagerWithStdin(logger, os.Stdin)
}

// NewFileManagerWithStdin creates a FileManager reading "-" from stdin
func NewFileManagerWithStdin(logger zerolog.Logger, stdin io.Reader) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
		stdin:  stdin,
		memory: NewMemoryChecker(logger),
	}
}

// FileExists checks if a file or directory exists
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFileInfo returns information about a file
func (fm *FileManager) GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, WrapError(ErrNotFound, fmt.Sprintf("file not found: %s", path))
		}
		return nil, WrapError(err, fmt.Sprintf("failed to get file info for: %s", path))
	}

	return &FileInfo{
		Path:        path,
		Name:        stat.Name(),
		Size:        stat.Size(),
		IsDir:       stat.IsDir(),
		ModTime:     stat.ModTime(),
		Permissions: stat.Mode(),
	}, nil
}

// ReadInput reads path, or standard input when path is "-".
func (fm *FileManager) ReadInput(path string, opts FileReadOptions) ([]byte, error) {
	if path == "" {
		return nil, NewValidationError("path", path, "input path cannot be empty")
	}
	if path == StdinPath {
		return fm.ReadStdin(opts)
	}
	return fm.ReadFile(path, opts)
}

// ReadStdin reads all of standard input
func (fm *FileManager) ReadStdin(opts FileReadOptions) ([]byte, error) {
	if fm.stdin == nil {
		return nil, NewValidationError("stdin", nil, "no standard input available")
	}

	content, err := fm.readContent(fm.stdin, opts.MaxSize)
	if err != nil {
		return nil, WrapError(err, "failed to read standard input")
	}

	fm.logger.Debug().Int("bytes", len(content)).Msg("Read standard input")
	return content, nil
}

// ReadFile reads a file with the given options
func (fm *FileManager) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	if _, err := fm.validateFileForReading(path, opts); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to open file: %s", path))
	}
	defer func() {
		err := file.Close()
		if err != nil {
			fm.logger.Error().Err(err).Str("path", path).Msg("Failed to close file.")
		}
	}()

	content, err := fm.readContent(file, opts.MaxSize)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to read file content: %s", path))
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("Read input file")
	return content, nil
}

// validateFileForReading validates a file path and options before reading
func (fm *FileManager) validateFileForReading(path string, opts FileReadOptions) (*FileInfo, error) {
	info, err := fm.GetFileInfo(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir {
		return nil, NewValidationError("path", path, "is a directory, not a file")
	}

	if err := NewContentSizeValidator(opts.MaxSize).ValidateSize("file_size", info.Size); err != nil {
		return nil, err
	}

	if err := fm.memory.CheckSize("file_size", info.Size); err != nil {
		return nil, err
	}

	return info, nil
}

// readContent reads at most maxSize bytes and fails if the source holds more.
func (fm *FileManager) readContent(reader io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(reader)
	}

	content, err := io.ReadAll(io.LimitReader(reader, maxSize+1))
	if err != nil {
		return nil, err
	}
	if err := NewContentSizeValidator(maxSize).ValidateSize("content_size", int64(len(content))); err != nil {
		return nil, err
	}
	return content, nil
}
