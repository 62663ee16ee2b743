package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"kinblog/internal/models"
	"kinblog/internal/repository"
)

// uploadURLPrefix is the static path the stored files are served under.
const uploadURLPrefix = "/uploads/"

// ProfileService stores avatar uploads on disk and records the resulting
// URL path on the user. File content-type and size are not validated here;
// the transport layer's limits apply.
type ProfileService struct {
	users     repository.Users
	uploadDir string
}

func NewProfileService(users repository.Users, uploadDir string) *ProfileService {
	return &ProfileService{users: users, uploadDir: uploadDir}
}

// SaveAvatar writes the uploaded file under a generated name, updates the
// user's avatar path and returns the updated user.
func (s *ProfileService) SaveAvatar(ctx context.Context, userID, originalName string, src io.Reader) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	// Server-controlled filename; only the extension is kept from the client.
	filename := uuid.NewString() + filepath.Ext(originalName)
	dstPath := filepath.Join(s.uploadDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	urlPath := uploadURLPrefix + filename
	if err := s.users.UpdateProfilePicture(ctx, userID, urlPath); err != nil {
		return nil, fmt.Errorf("update profile picture: %w", err)
	}

	u.ProfilePicture = urlPath
	return u, nil
}
