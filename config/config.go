// Package config loads and saves the persistent RePKG settings.
//
// The settings are a flat set of keys stored in a YAML file.
// Every key can also be set with an environment variable using the
// REPKG_ prefix, for example REPKG_OVERWRITE=true.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Defacto2/helper"
	"github.com/Defacto2/repkg"
	"github.com/spf13/viper"
)

const (
	// Name is the default settings filename.
	Name = "repkg.yaml"
	// EnvPrefix is the prefix of the environment variable overrides.
	EnvPrefix = "REPKG"
)

var ErrExt = errors.New("settings file needs a .yaml, .yml, .toml or .json extension")

// Settings are the persistent user choices.
type Settings struct {
	Log      bool   `mapstructure:"log"`      // Log appends every run to the journal.
	LogFile  string `mapstructure:"log_file"` // LogFile is the journal path.
	Program  string `mapstructure:"program"`  // Program is the RePKG path, empty to search for it.
	Mode     string `mapstructure:"mode"`     // Mode is the last used mode.
	Input    string `mapstructure:"input"`    // Input is the last used input path.
	Output   string `mapstructure:"output"`   // Output is the last used output directory.
	Theme    string `mapstructure:"theme"`    // Theme is kept for the desktop front-end.
	Language string `mapstructure:"language"` // Language is kept for the desktop front-end.

	Tex          bool   `mapstructure:"tex"`
	SingleDir    bool   `mapstructure:"singledir"`
	UseName      bool   `mapstructure:"usename"`
	NoTexConvert bool   `mapstructure:"no_tex_convert"`
	Overwrite    bool   `mapstructure:"overwrite"`
	CopyProject  bool   `mapstructure:"copyproject"`
	ExtsOnly     string `mapstructure:"exts_only"`
	ExtsIgnore   string `mapstructure:"exts_ignore"`

	SortBy       string `mapstructure:"sortby"`
	Sort         bool   `mapstructure:"sort"`
	PrintEntries bool   `mapstructure:"printentries"`
	InfoTex      bool   `mapstructure:"info_tex"`
	ProjectInfo  string `mapstructure:"projectinfo"`
	TitleFilter  string `mapstructure:"title_filter"`
}

// Defaults returns the settings used when there is no settings file.
func Defaults() Settings {
	return Settings{
		Log:          true,
		LogFile:      repkg.LogName,
		Mode:         string(repkg.Extract),
		Theme:        "dark",
		Language:     "en",
		SortBy:       repkg.SortName,
		Sort:         true,
		PrintEntries: true,
	}
}

// ExtractOptions returns the extract mode options of the settings.
func (s Settings) ExtractOptions() repkg.ExtractOptions {
	return repkg.ExtractOptions{
		Tex:          s.Tex,
		SingleDir:    s.SingleDir,
		UseName:      s.UseName,
		NoTexConvert: s.NoTexConvert,
		Overwrite:    s.Overwrite,
		CopyProject:  s.CopyProject,
		ExtsOnly:     s.ExtsOnly,
		ExtsIgnore:   s.ExtsIgnore,
	}
}

// InfoOptions returns the info mode options of the settings.
func (s Settings) InfoOptions() repkg.InfoOptions {
	return repkg.InfoOptions{
		SortBy:       s.SortBy,
		Sort:         s.Sort,
		PrintEntries: s.PrintEntries,
		InfoTex:      s.InfoTex,
		ProjectInfo:  s.ProjectInfo,
		TitleFilter:  s.TitleFilter,
	}
}

// Map returns the settings keyed by their names in the settings file.
func (s Settings) Map() map[string]any {
	return map[string]any{
		"log":            s.Log,
		"log_file":       s.LogFile,
		"program":        s.Program,
		"mode":           s.Mode,
		"input":          s.Input,
		"output":         s.Output,
		"theme":          s.Theme,
		"language":       s.Language,
		"tex":            s.Tex,
		"singledir":      s.SingleDir,
		"usename":        s.UseName,
		"no_tex_convert": s.NoTexConvert,
		"overwrite":      s.Overwrite,
		"copyproject":    s.CopyProject,
		"exts_only":      s.ExtsOnly,
		"exts_ignore":    s.ExtsIgnore,
		"sortby":         s.SortBy,
		"sort":           s.Sort,
		"printentries":   s.PrintEntries,
		"info_tex":       s.InfoTex,
		"projectinfo":    s.ProjectInfo,
		"title_filter":   s.TitleFilter,
	}
}

// Path returns the settings file path.
// An empty name returns the default file in the user configuration directory.
func Path(name string) (string, error) {
	if name != "" {
		return filepath.Abs(name)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config path %w", err)
	}
	return filepath.Join(dir, "repkg", Name), nil
}

// Load reads the named settings file.
// When the file does not exist, the defaults are saved to it and returned.
// Environment variables override the values in the file.
func Load(name string) (Settings, error) {
	if err := checkExt(name); err != nil {
		return Settings{}, err
	}
	v := viper.New()
	for key, val := range Defaults().Map() {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(name)
	if err := v.ReadInConfig(); err != nil {
		if !missing(err) {
			return Settings{}, fmt.Errorf("config load %w", err)
		}
		if err := Save(name, Defaults()); err != nil {
			return Settings{}, err
		}
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config decode %w", err)
	}
	return s, nil
}

// Save writes the settings to the named file, replacing any existing file.
func Save(name string, s Settings) error {
	if err := checkExt(name); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), helper.DirWriteReadRead); err != nil {
		return fmt.Errorf("config save dir %w", err)
	}
	v := viper.New()
	for key, val := range s.Map() {
		v.Set(key, val)
	}
	if err := v.WriteConfigAs(name); err != nil {
		return fmt.Errorf("config save %w", err)
	}
	return nil
}

// Reset replaces the named settings file with the defaults.
func Reset(name string) (Settings, error) {
	s := Defaults()
	if err := Save(name, s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func checkExt(name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml", ".json":
		return nil
	}
	return fmt.Errorf("%w: %s", ErrExt, filepath.Base(name))
}

func missing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
