package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Defacto2/helper"
	"github.com/Defacto2/repkg"
	"github.com/Defacto2/repkg/config"
	"github.com/nalgeon/be"
)

func TestLoadCreatesDefaults(t *testing.T) {
	t.Parallel()
	name := filepath.Join(t.TempDir(), "nested", config.Name)
	s, err := config.Load(name)
	be.Err(t, err, nil)
	be.Equal(t, s, config.Defaults())
	_, err = os.Stat(name)
	be.Err(t, err, nil)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	name := filepath.Join(t.TempDir(), config.Name)
	want := config.Defaults()
	want.Mode = string(repkg.Info)
	want.Input = "/wallpapers/scene.pkg"
	want.Overwrite = true
	want.ExtsOnly = "png,jpg"
	want.SortBy = repkg.SortSize
	want.Sort = false
	want.TitleFilter = "forest"
	err := config.Save(name, want)
	be.Err(t, err, nil)
	got, err := config.Load(name)
	be.Err(t, err, nil)
	be.Equal(t, got, want)
}

func TestSaveCreatesDirs(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "a", "b")
	name := filepath.Join(dir, config.Name)
	err := config.Save(name, config.Defaults())
	be.Err(t, err, nil)
	st, err := os.Stat(dir)
	be.Err(t, err, nil)
	be.True(t, st.IsDir())
	be.True(t, helper.File(name))
}

func TestReset(t *testing.T) {
	t.Parallel()
	name := filepath.Join(t.TempDir(), config.Name)
	s := config.Defaults()
	s.Tex = true
	be.Err(t, config.Save(name, s), nil)
	got, err := config.Reset(name)
	be.Err(t, err, nil)
	be.Equal(t, got, config.Defaults())
	got, err = config.Load(name)
	be.Err(t, err, nil)
	be.True(t, !got.Tex)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("REPKG_OVERWRITE", "true")
	t.Setenv("REPKG_EXTS_IGNORE", "mp4")
	name := filepath.Join(t.TempDir(), config.Name)
	s, err := config.Load(name)
	be.Err(t, err, nil)
	be.True(t, s.Overwrite)
	be.Equal(t, s.ExtsIgnore, "mp4")
}

func TestBadExtension(t *testing.T) {
	t.Parallel()
	name := filepath.Join(t.TempDir(), "config.ini")
	_, err := config.Load(name)
	be.Err(t, err, config.ErrExt)
	err = config.Save(name, config.Defaults())
	be.Err(t, err, config.ErrExt)
}

func TestOptions(t *testing.T) {
	t.Parallel()
	s := config.Defaults()
	s.UseName = true
	s.ExtsIgnore = "mp4"
	s.ProjectInfo = "title"
	x := s.ExtractOptions()
	be.True(t, x.UseName)
	be.Equal(t, x.ExtsIgnore, "mp4")
	i := s.InfoOptions()
	be.Equal(t, i.SortBy, repkg.SortName)
	be.True(t, i.Sort)
	be.True(t, i.PrintEntries)
	be.Equal(t, i.ProjectInfo, "title")
}

func TestPath(t *testing.T) {
	t.Parallel()
	got, err := config.Path("settings.yaml")
	be.Err(t, err, nil)
	be.True(t, filepath.IsAbs(got))
	be.Equal(t, filepath.Base(got), "settings.yaml")
}
