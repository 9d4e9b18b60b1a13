// Package util - filesystem helpers for batch runs.
package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ImageFile represents one image file read from disk.
type ImageFile struct {
	// Path is the location the file was read from.
	Path string
	// Data is the raw encoded bytes.
	Data []byte
}

// imageExtensions are the file extensions considered images.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
}

// LoadDirectoryImageFiles reads every image file directly under dir,
// filtered by extension. Subdirectories are skipped.
//
// Arguments:
//   - dir: Directory path containing image files.
//
// Returns:
//   - []ImageFile: One entry per image file, in directory order.
//   - error: Non-nil if the directory or a file cannot be read.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "util: reading directory %s", dir)
	}

	var files []ImageFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "util: reading %s", path)
		}
		files = append(files, ImageFile{Path: path, Data: data})
	}
	return files, nil
}
