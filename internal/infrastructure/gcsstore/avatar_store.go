package gcsstore

import (
	"context"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

// AvatarStore uploads user avatars to a GCS bucket under avatars/<user id>/.
type AvatarStore struct {
	client *storage.Client
	bucket string
}

func NewAvatarStore(client *storage.Client, bucket string) *AvatarStore {
	return &AvatarStore{client: client, bucket: bucket}
}

func (s *AvatarStore) Upload(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	return helpers.UploadObject(ctx, s.client, s.bucket, ObjectPath(userID, filename), contentType, r)
}

// ObjectPath returns a fresh object name for an avatar, keeping the original extension.
func ObjectPath(userID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "avatars/" + userID + "/" + uuid.NewString() + ext
}
