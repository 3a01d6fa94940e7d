package fsops

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestCopy_PreservesSourceAndContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("jpeg bytes")
	mtime := time.Date(2021, 3, 15, 8, 0, 0, 0, time.UTC)
	if err := afero.WriteFile(fs, "src/a.jpg", content, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fs.Chtimes("src/a.jpg", mtime, mtime); err != nil {
		t.Fatal(err)
	}

	if err := Copy(fs, "src/a.jpg", "dest/a.jpg"); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	got, err := afero.ReadFile(fs, "dest/a.jpg")
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("destination content = %q, want %q", got, content)
	}

	orig, err := afero.ReadFile(fs, "src/a.jpg")
	if err != nil {
		t.Fatalf("source removed by copy: %v", err)
	}
	if string(orig) != string(content) {
		t.Errorf("source content changed: %q", orig)
	}

	fi, err := fs.Stat("dest/a.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if !fi.ModTime().Equal(mtime) {
		t.Errorf("destination mtime = %v, want %v", fi.ModTime(), mtime)
	}
}

func TestCopy_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := Copy(fs, "src/missing.jpg", "dest/missing.jpg"); err == nil {
		t.Fatal("Copy of missing source succeeded, want error")
	}
	if exists, _ := afero.Exists(fs, "dest/missing.jpg"); exists {
		t.Error("destination created despite failed copy")
	}
}

func TestMove_SourceGone(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("video bytes")
	if err := afero.WriteFile(fs, "src/clip.mp4", content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Move(fs, "src/clip.mp4", "dest/clip.mp4"); err != nil {
		t.Fatalf("Move: %v", err)
	}

	if exists, _ := afero.Exists(fs, "src/clip.mp4"); exists {
		t.Error("source still exists after move")
	}
	got, err := afero.ReadFile(fs, "dest/clip.mp4")
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("destination content = %q, want %q", got, content)
	}
}

// renameRefusingFs simulates a cross-device destination: every Rename fails,
// forcing Move onto the copy+remove fallback.
type renameRefusingFs struct {
	afero.Fs
}

func (f renameRefusingFs) Rename(oldname, newname string) error {
	return errors.New("invalid cross-device link")
}

func TestMove_CrossDeviceFallback(t *testing.T) {
	fs := renameRefusingFs{afero.NewMemMapFs()}
	content := []byte("photo bytes")
	if err := afero.WriteFile(fs, "src/b.png", content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Move(fs, "src/b.png", "dest/b.png"); err != nil {
		t.Fatalf("Move: %v", err)
	}

	if exists, _ := afero.Exists(fs, "src/b.png"); exists {
		t.Error("source still exists after fallback move")
	}
	got, err := afero.ReadFile(fs, "dest/b.png")
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("destination content = %q, want %q", got, content)
	}
}
