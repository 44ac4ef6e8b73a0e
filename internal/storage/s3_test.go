package storage_test

import (
	"strings"
	"testing"

	"recipe-service/internal/storage"
)

func TestBuildKeyNamespacing(t *testing.T) {
	key := storage.BuildKey("recipes", "group-123", "cake.jpg")

	if !strings.HasPrefix(key, "recipes/group-123/") {
		t.Fatalf("key %q not namespaced by prefix and group id", key)
	}
	if !strings.HasSuffix(key, "-cake.jpg") {
		t.Errorf("key %q does not end with the filename", key)
	}
}

func TestBuildKeySanitizesWhitespace(t *testing.T) {
	key := storage.BuildKey("recipes", "g", "my birthday\tcake photo.jpg")

	if strings.ContainsAny(key, " \t\n") {
		t.Errorf("key %q still contains whitespace", key)
	}
	if !strings.HasSuffix(key, "-my_birthday_cake_photo.jpg") {
		t.Errorf("whitespace not replaced with underscores: %q", key)
	}
}

func TestBuildKeyUnique(t *testing.T) {
	a := storage.BuildKey("recipes", "g", "same.jpg")
	b := storage.BuildKey("recipes", "g", "same.jpg")
	if a == b {
		t.Errorf("two keys for identical inputs collided: %q", a)
	}
}
