package cmd

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportShot(t *testing.T, path, typeID, setID string) {
	t.Helper()
	_, err := executeHere(t, critBlock, "parse", "-q",
		"--type", typeID, "--set", setID, "--export", path)
	require.NoError(t, err)
}

func TestImportCmd(t *testing.T) {
	t.Chdir(t.TempDir())
	exportShot(t, "flower.json", "flower", "PaleFlame")
	exportShot(t, "plume.yaml", "plume", "EmblemOfSeveredFate")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "all records",
			args: []string{"import", "flower.json", "plume.yaml", "-q"},
			want: []string{"flower.json#", "plume.yaml#"},
		},
		{
			name: "filter by type",
			args: []string{"import", "flower.json", "plume.yaml", "-q", "--type", "plume"},
			want: []string{"plume.yaml#"},
		},
		{
			name: "filter by set",
			args: []string{"import", "flower.json", "plume.yaml", "-q", "--set", "PaleFlame", "--type", "ALL"},
			want: []string{"flower.json#"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeHere(t, "", tt.args...)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, len(tt.want))
			for i, prefix := range tt.want {
				assert.True(t, strings.HasPrefix(lines[i], prefix), "line %q", lines[i])
				assert.True(t, strings.HasSuffix(lines[i], "\t47.8\tSS"), "line %q", lines[i])
			}
		})
	}
}

func TestImportCmd_ListSets(t *testing.T) {
	t.Chdir(t.TempDir())
	exportShot(t, "a.json", "flower", "PaleFlame")
	exportShot(t, "b.json", "plume", "EmblemOfSeveredFate")
	exportShot(t, "c.yaml", "sands", "PaleFlame")

	out, err := executeHere(t, "", "import", "a.json", "b.json", "c.yaml", "--sets")
	require.NoError(t, err)
	assert.Equal(t, "PaleFlame\t蒼白の炎\nEmblemOfSeveredFate\t絶縁の旗印\n", out)

	out, err = executeHere(t, "", "import", "a.json", "b.json", "c.yaml", "--sets", "--type", "plume")
	require.NoError(t, err)
	assert.Equal(t, "EmblemOfSeveredFate\t絶縁の旗印\n", out)

	_, err = executeHere(t, "", "import", "a.json", "gone.json", "--sets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.json")
}

func TestImportCmd_ProfileOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	exportShot(t, "flower.json", "flower", "PaleFlame")

	out, err := executeHere(t, "", "import", "flower.json", "-q", "-p", "HP")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "\t42.0\tS"), out)
}

func TestImportCmd_EmptyExport(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := executeHere(t, "malformed\n", "parse", "-q", "--export", "empty.json")
	require.NoError(t, err)

	out, err := executeHere(t, "", "import", "empty.json", "-q")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "\t0.0\tB"), out)
}

func TestImportCmd_SchemaViolation(t *testing.T) {
	t.Chdir(t.TempDir())
	bad := `{"id": "XYZ", "level": 25, "profile": "CRIT", "score": 0, "tier": "B", "subStats": []}`
	require.NoError(t, os.WriteFile("bad.json", []byte(bad), 0644))

	_, err := executeHere(t, "", "import", "bad.json", "-q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema violations")
}

func TestImportCmd_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := executeHere(t, "", "import", "nope.json", "-q")
	require.Error(t, err)
	assert.Contains(t, out, "nope.json\terror")
	assert.Equal(t, fmt.Sprintf("%d of %d entries could not be scored", 1, 1), err.Error())
}
