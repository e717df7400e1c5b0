// Package discovery selects the media files to inspect.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"videofix/internal/errors"
	"videofix/internal/util"
)

// SelectFiles resolves a root path into the list of files to check.
// A file selects exactly itself. A directory selects its direct children
// with a known media extension; there is no recursion into subdirectories.
// Directory results are sorted case-insensitively by filename.
func SelectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.NewPathError(fmt.Sprintf("path does not exist: %s", root))
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("cannot read directory %s", root), err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		fullPath := filepath.Join(root, name)
		if util.IsMediaFile(fullPath) {
			files = append(files, fullPath)
		}
	}

	if len(files) == 0 {
		return nil, errors.NewNoFilesFoundError(root)
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})

	return files, nil
}
