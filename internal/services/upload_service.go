package service

import (
	"context"
	"time"

	"recipe-service/internal/storage"
)

// Presigner issues a time-bounded signed URL authorizing one PUT to key.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
}

// UploadService is the upload-credential issuer. It keeps no state: the
// credential is derived from the inputs plus the signing key, and no record
// of issuance exists anywhere.
type UploadService struct {
	presigner Presigner
	keyPrefix string
	ttl       time.Duration
}

func NewUploadService(p Presigner, keyPrefix string, ttl time.Duration) *UploadService {
	return &UploadService{presigner: p, keyPrefix: keyPrefix, ttl: ttl}
}

// IssueCredential derives the storage key for one file of a submission and
// signs a PUT URL for it. groupID correlates every file of one recipe
// submission.
func (s *UploadService) IssueCredential(ctx context.Context, filename, contentType, groupID string) (url, key string, err error) {
	key = storage.BuildKey(s.keyPrefix, groupID, filename)
	url, err = s.presigner.PresignPut(ctx, key, contentType, s.ttl)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}
