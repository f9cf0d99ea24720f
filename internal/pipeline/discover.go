package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Renameable image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".heic": true,
	".bmp":  true,
	".nef":  true,
	".dng":  true,
}

// Eligible reports whether path has an allowed image extension
// (case-insensitive).
func Eligible(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover returns the image files under path sorted lexicographically
// for deterministic processing order. A path pointing at a single file
// returns just that file when eligible. Directory scans list only the
// top level unless recursive is set.
func Discover(path string, recursive bool) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if Eligible(path) {
			return []string{path}, nil
		}
		return nil, nil
	}

	var files []string
	if recursive {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && Eligible(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && Eligible(e.Name()) {
				files = append(files, filepath.Join(path, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
