package feed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReadsItemsAndTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	content := `title: test wire
items:
  - text: "hello"
    color: "#FF0000"
  - text: "world"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Title != "test wire" {
		t.Fatalf("expected title %q, got %q", "test wire", f.Title)
	}
	if len(f.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(f.Items))
	}
	if f.Items[0].Color != "#FF0000" {
		t.Fatalf("expected first item color set, got %q", f.Items[0].Color)
	}
	if f.Items[1].Text != "world" {
		t.Fatalf("expected second item text, got %q", f.Items[1].Text)
	}
}

func TestLoadDefaultsTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - text: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Title == "" {
		t.Fatal("expected a default title")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	if err := os.WriteFile(path, []byte("items: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestDefaultFeedHasWideItems(t *testing.T) {
	f := Default()
	if len(f.Items) == 0 {
		t.Fatal("expected default items")
	}
	wide := false
	for _, it := range f.Items {
		if len(it.Text) > 120 {
			wide = true
		}
	}
	if !wide {
		t.Fatal("expected at least one item wider than a typical terminal")
	}
}
