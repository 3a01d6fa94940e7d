// Package fsops performs the copy, move and remove actions against an
// afero filesystem.
package fsops

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Copy duplicates src to dst, preserving the source's modification time.
// The source is left untouched. On a write error the partial destination
// file is removed.
func Copy(fs afero.Fs, src, dst string) error {
	fi, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = fs.Remove(dst)
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		_ = fs.Remove(dst)
		return fmt.Errorf("close %s: %w", dst, err)
	}

	if err := fs.Chtimes(dst, fi.ModTime(), fi.ModTime()); err != nil {
		return fmt.Errorf("preserve times on %s: %w", dst, err)
	}
	return nil
}

// Remove deletes src. Used after a successful conversion when the source
// should not be kept.
func Remove(fs afero.Fs, src string) error {
	if err := fs.Remove(src); err != nil {
		return fmt.Errorf("remove %s: %w", src, err)
	}
	return nil
}

// Move relocates src to dst. Rename is attempted first; when the filesystem
// refuses (cross-device link), it falls back to copy followed by source
// removal.
func Move(fs afero.Fs, src, dst string) error {
	if err := fs.Rename(src, dst); err == nil {
		return nil
	}
	if err := Copy(fs, src, dst); err != nil {
		return err
	}
	if err := fs.Remove(src); err != nil {
		return fmt.Errorf("remove %s after copy: %w", src, err)
	}
	return nil
}
