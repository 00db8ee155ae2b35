package utils

import "testing"

func TestExtractObjectPathValid(t *testing.T) {
	path, err := ExtractObjectPath("https://storage.googleapis.com/emporia-bucket/products/1_chair.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if path != "products/1_chair.jpg" {
		t.Errorf("expected 'products/1_chair.jpg', got '%s'", path)
	}
}

func TestExtractObjectPathInvalidPrefix(t *testing.T) {
	if _, err := ExtractObjectPath("https://example.com/emporia-bucket/products/1_chair.jpg"); err == nil {
		t.Fatal("expected error for invalid prefix")
	}
}

func TestExtractObjectPathNoBucketSeparator(t *testing.T) {
	if _, err := ExtractObjectPath("https://storage.googleapis.com/nobucket"); err == nil {
		t.Fatal("expected error for no bucket separator")
	}
}
