package secrets

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_EnvFallback(t *testing.T) {
	t.Setenv("PARTITIONED_BUCKET", "lake-partitioned")
	t.Setenv("SIMPLE_BUCKET", "lake-simple")

	b, err := Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if b.Partitioned != "lake-partitioned" {
		t.Errorf("Partitioned = %q", b.Partitioned)
	}
	if b.Simple != "lake-simple" {
		t.Errorf("Simple = %q", b.Simple)
	}
}

func TestResolve_FileVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buckets.json")
	doc := `{"partitioned": "p-bucket", "simple": "s-bucket"}`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	b, err := Resolve(context.Background(), "file://"+path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if b.Partitioned != "p-bucket" || b.Simple != "s-bucket" {
		t.Errorf("Resolve() = %+v", b)
	}
}

func TestResolve_BadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buckets.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Resolve(context.Background(), "file://"+path); err == nil {
		t.Error("expected error for non-JSON secrets document")
	}
}
