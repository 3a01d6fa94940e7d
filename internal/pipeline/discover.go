package pipeline

import (
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/backmassage/photosort/internal/media"
)

// Discover walks sourceDir, collects regular files with recognized image or
// video extensions, and returns the paths sorted lexicographically for
// deterministic processing order. Files with unrecognized extensions are
// silently skipped.
func Discover(fs afero.Fs, sourceDir string) ([]string, error) {
	var files []string
	err := afero.Walk(fs, sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if media.KindOf(path) == media.KindUnrecognized {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
