// Package discovery finds OCR text dumps under a directory tree.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns matches every plain-text OCR dump.
var DefaultPatterns = []string{"**/*.txt"}

// File is one discovered OCR text file.
type File struct {
	Path    string
	RelPath string
	Size    int64
}

// FileDiscovery manages file discovery operations
type FileDiscovery struct {
	rootPath       string
	followSymlinks bool
	patterns       []string
	exclude        []string
}

// NewFileDiscovery creates a new FileDiscovery instance. Empty patterns fall
// back to DefaultPatterns.
func NewFileDiscovery(rootPath string, patterns, exclude []string, followSymlinks bool) *FileDiscovery {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &FileDiscovery{
		rootPath:       rootPath,
		followSymlinks: followSymlinks,
		patterns:       patterns,
		exclude:        exclude,
	}
}

// DiscoverFiles returns the matching files sorted by relative path.
// A file matched by several patterns is returned once.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	for _, p := range append(append([]string{}, fd.patterns...), fd.exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
	}

	seen := make(map[string]bool)
	var files []File

	for _, pattern := range fd.patterns {
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || fd.excluded(match) {
				continue
			}
			f, ok := fd.processMatch(match)
			if !ok {
				continue
			}
			seen[match] = true
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})
	return files, nil
}

func (fd *FileDiscovery) excluded(match string) bool {
	for _, ex := range fd.exclude {
		if ok, _ := doublestar.Match(ex, match); ok {
			return true
		}
	}
	return false
}

// processMatch converts a glob match into a File, returning false if the match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	fullPath := filepath.Join(fd.rootPath, filepath.FromSlash(match))

	info, err := os.Lstat(fullPath)
	if err != nil {
		return File{}, false
	}

	if info.Mode()&os.ModeSymlink != 0 {
		resolved, ok := fd.resolveSymlink(fullPath)
		if !ok {
			return File{}, false
		}
		info = resolved
	}

	if info.IsDir() {
		return File{}, false
	}

	return File{
		Path:    fullPath,
		RelPath: match,
		Size:    info.Size(),
	}, true
}

// resolveSymlink follows a symlink if configured and it stays under the root.
func (fd *FileDiscovery) resolveSymlink(fullPath string) (os.FileInfo, bool) {
	if !fd.followSymlinks {
		return nil, false
	}

	realPath, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return nil, false
	}

	root, err := filepath.EvalSymlinks(fd.rootPath)
	if err != nil {
		return nil, false
	}
	rel, err := filepath.Rel(root, realPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, false
	}

	info, err := os.Stat(realPath)
	if err != nil {
		return nil, false
	}
	return info, true
}
