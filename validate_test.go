package repkg_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/Defacto2/helper"
	"github.com/Defacto2/repkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pkg writes a minimal Wallpaper Engine package header.
func pkg(t *testing.T, dir string) string {
	t.Helper()
	name := filepath.Join(dir, "scene.pkg")
	header := append([]byte{8, 0, 0, 0}, []byte("PKGV0001")...)
	header = append(header, make([]byte, 64)...)
	require.NoError(t, os.WriteFile(name, header, 0o644))
	return name
}

// zipped writes a small zip archive.
func zipped(t *testing.T, dir string) string {
	t.Helper()
	name := filepath.Join(dir, "scene.zip")
	f, err := os.Create(name)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	fw, err := w.Create("project.json")
	require.NoError(t, err)
	_, err = fw.Write([]byte(`{"title":"forest"}`))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return name
}

func TestValidate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := pkg(t, dir)
	archive := zipped(t, dir)
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, helper.Touch(file))

	tests := []struct {
		name   string
		mode   repkg.Mode
		input  string
		output string
		want   error
	}{
		{"Extract package", repkg.Extract, input, filepath.Join(dir, "out"), nil},
		{"Extract directory", repkg.Extract, dir, "", nil},
		{"Info package", repkg.Info, input, "", nil},
		{"Info ignores output file", repkg.Info, input, file, nil},
		{"Bad mode", repkg.Mode("list"), input, "", repkg.ErrMode},
		{"Empty input", repkg.Extract, "", "", repkg.ErrInput},
		{"Missing input", repkg.Info, filepath.Join(dir, "none.pkg"), "", repkg.ErrMissing},
		{"Zip archive", repkg.Extract, archive, "", repkg.ErrPackage},
		{"Output is a file", repkg.Extract, input, file, repkg.ErrPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := repkg.Validate(tt.mode, tt.input, tt.output)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateThenBuild(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := pkg(t, dir)
	out := filepath.Join(dir, "out")
	require.NoError(t, repkg.Validate(repkg.Extract, input, out))
	args := repkg.Build(exe, repkg.Extract, input, out, repkg.ExtractOptions{CopyProject: true}, repkg.InfoOptions{})
	assert.Equal(t, []string{exe, "extract", input, "-o", out, "-r", "-c"}, args)
}
