package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	service "recipe-service/internal/services"
)

type fakePresigner struct {
	lastKey         string
	lastContentType string
	lastTTL         time.Duration
	err             error
}

func (f *fakePresigner) PresignPut(_ context.Context, key, contentType string, ttl time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastKey = key
	f.lastContentType = contentType
	f.lastTTL = ttl
	return "https://bucket.example.com/" + key + "?sig=abc", nil
}

func TestIssueCredential(t *testing.T) {
	p := &fakePresigner{}
	svc := service.NewUploadService(p, "recipes", 10*time.Minute)

	url, key, err := svc.IssueCredential(context.Background(), "pie photo.jpg", "image/jpeg", "group-1")
	if err != nil {
		t.Fatalf("IssueCredential: %v", err)
	}
	if !strings.HasPrefix(key, "recipes/group-1/") {
		t.Errorf("key %q not namespaced by group", key)
	}
	if !strings.Contains(url, key) {
		t.Errorf("url %q does not reference key %q", url, key)
	}
	if p.lastContentType != "image/jpeg" {
		t.Errorf("signed content type = %q", p.lastContentType)
	}
	if p.lastTTL != 10*time.Minute {
		t.Errorf("ttl = %v, want 10m", p.lastTTL)
	}
}

func TestIssueCredentialSignerFailure(t *testing.T) {
	boom := errors.New("signer down")
	svc := service.NewUploadService(&fakePresigner{err: boom}, "recipes", time.Minute)

	_, _, err := svc.IssueCredential(context.Background(), "a.jpg", "image/jpeg", "g")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped signer error", err)
	}
}
