package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

type fsDocumentStore struct {
	baseDir string
	logger  logger.Logger
	now     func() time.Time
}

// NewFsDocumentStore creates a filesystem-backed DocumentStore rooted at the
// configured upload directory.
func NewFsDocumentStore(settings *config.StorageSettings, logger logger.Logger) (policies.DocumentStore, error) {
	if settings.UploadDir == "" {
		return nil, fmt.Errorf("upload directory must be configured")
	}

	if err := os.MkdirAll(settings.UploadDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &fsDocumentStore{
		baseDir: settings.UploadDir,
		logger:  logger,
		now:     time.Now,
	}, nil
}

func (s *fsDocumentStore) Save(ctx context.Context, fileName string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	safe := sanitizeFilename(fileName)
	if safe == "" {
		return "", fmt.Errorf("invalid file name: %q", fileName)
	}

	stored := fmt.Sprintf("%s_%s", s.now().Format("20060102_150405"), safe)
	path := filepath.Join(s.baseDir, stored)

	if err := os.WriteFile(path, content, 0600); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	s.logger.Info("Stored document at ", path)
	return path, nil
}

func (s *fsDocumentStore) Download(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.checkWithinBase(path); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return content, nil
}

func (s *fsDocumentStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.checkWithinBase(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.logger.Info("Deleted document at ", path)
	return nil
}

// checkWithinBase rejects paths that escape the upload directory.
func (s *fsDocumentStore) checkWithinBase(path string) error {
	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve document path: %w", err)
	}
	if absPath != absBase && !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return fmt.Errorf("document path %q is outside the upload directory", path)
	}
	return nil
}

// sanitizeFilename strips directory components and unsafe characters.
func sanitizeFilename(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	safe = strings.Trim(safe, "._")
	if safe == "" || safe == "." || safe == ".." {
		return ""
	}
	return safe
}
