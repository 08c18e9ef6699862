package walk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAlbumsGroupsByDirectory(t *testing.T) {
	root := t.TempDir()
	albumDir := filepath.Join(root, "Radiohead", "OK Computer")
	if err := os.MkdirAll(albumDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"01 Airbag.flac", "02 Paranoid Android.flac", "cover.jpg"} {
		if err := os.WriteFile(filepath.Join(albumDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	albums, err := Albums(root, nil)
	if err != nil {
		t.Fatalf("Albums error: %v", err)
	}
	if len(albums) != 1 {
		t.Fatalf("len(albums) = %d, want 1", len(albums))
	}
	if len(albums[0].Files) != 2 {
		t.Errorf("len(Files) = %d, want 2 (cover.jpg must be excluded)", len(albums[0].Files))
	}
}

func TestAlbumsDedupsSymlinkedFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "track.flac"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(root, "track.flac"), filepath.Join(root, "alias.flac")); err != nil {
		t.Skipf("symlinks unsupported in this environment: %v", err)
	}

	albums, err := Albums(root, nil)
	if err != nil {
		t.Fatalf("Albums error: %v", err)
	}
	if len(albums) != 1 || len(albums[0].Files) != 1 {
		t.Errorf("got %+v, want a single deduped file", albums)
	}
}

func TestAlbumsEmptyDirectory(t *testing.T) {
	albums, err := Albums(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Albums error: %v", err)
	}
	if len(albums) != 0 {
		t.Errorf("len(albums) = %d, want 0", len(albums))
	}
}
