package discovery

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func relPaths(files []File) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestDiscoverFilesDefaults(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.txt":              "HP+1",
		"shots/a.txt":        "HP+2",
		"shots/deep/c.txt":   "HP+3",
		"shots/notes.md":     "ignored",
		"shots/deep/img.png": "ignored",
	})

	files, err := NewFileDiscovery(root, nil, nil, false).DiscoverFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"b.txt", "shots/a.txt", "shots/deep/c.txt"}, relPaths(files))
	assert.Equal(t, int64(4), files[0].Size)
	assert.Equal(t, filepath.Join(root, "b.txt"), files[0].Path)
}

func TestDiscoverFilesPatternsAndExclude(t *testing.T) {
	root := writeTree(t, map[string]string{
		"ocr/one.txt":       "",
		"ocr/two.ocr":       "",
		"ocr/old/three.txt": "",
	})

	files, err := NewFileDiscovery(root, []string{"**/*.txt", "**/*.ocr", "ocr/*.txt"}, []string{"**/old/**"}, false).DiscoverFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"ocr/one.txt", "ocr/two.ocr"}, relPaths(files))
}

func TestDiscoverFilesInvalidPattern(t *testing.T) {
	_, err := NewFileDiscovery(t.TempDir(), []string{"[unclosed"}, nil, false).DiscoverFiles()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestDiscoverFilesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := writeTree(t, map[string]string{"real/a.txt": "HP+1"})
	outside := writeTree(t, map[string]string{"b.txt": "HP+2"})
	require.NoError(t, os.Symlink(filepath.Join(root, "real", "a.txt"), filepath.Join(root, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "b.txt"), filepath.Join(root, "escape.txt")))

	files, err := NewFileDiscovery(root, nil, nil, false).DiscoverFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"real/a.txt"}, relPaths(files))

	files, err = NewFileDiscovery(root, nil, nil, true).DiscoverFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"link.txt", "real/a.txt"}, relPaths(files))
}
