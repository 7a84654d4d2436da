package uses

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	content := `items:
  - title: MacBook Pro
    category: Workstation
    description: 14-inch, M3
  - title: Neovim
    category: Development tools
    href: https://neovim.io/
    description: Daily driver editor
`
	path := filepath.Join(t.TempDir(), "uses.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Items) != 2 {
		t.Fatalf("Load() returned %d items, want 2", len(file.Items))
	}
	if file.Items[0].Title != "MacBook Pro" {
		t.Errorf("Items[0].Title = %v, want MacBook Pro", file.Items[0].Title)
	}
	if file.Items[1].Href != "https://neovim.io/" {
		t.Errorf("Items[1].Href = %v, want https://neovim.io/", file.Items[1].Href)
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	if err == nil {
		t.Error("Load() with missing file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uses.yaml")
	if err := os.WriteFile(path, []byte("items: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() with invalid yaml should return error")
	}
}
