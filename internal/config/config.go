// Package config resolves runtime settings for the todo CLI.
//
// Precedence, lowest to highest:
//  1. Defaults
//  2. YAML file (explicit path, else .mdtodo.yaml in the working directory)
//  3. Environment variables (MDTODO_*)
//  4. Command-line flags that were set explicitly
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/mdtodo/internal/logging"
	"github.com/idilsaglam/mdtodo/internal/store/mdstore"
	"github.com/idilsaglam/mdtodo/internal/ui"
)

// ProjectFileName is the config file looked up in the working directory.
const ProjectFileName = ".mdtodo.yaml"

const envPrefix = "MDTODO_"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds resolved settings.
type Config struct {
	File     string `yaml:"file"`
	Theme    string `yaml:"theme"`
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		File:     mdstore.DefaultFileName,
		Theme:    "classic",
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// Options controls Load.
type Options struct {
	// WorkingDir anchors the project config lookup and relative file paths.
	// Defaults to the process working directory.
	WorkingDir string

	// ExplicitPath is a config file given with --config. It must exist.
	ExplicitPath string

	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// Overrides holds values from flags; empty fields are ignored.
	Overrides Config
}

// Result is a resolved configuration plus where it came from.
type Result struct {
	Config     Config
	LoadedFrom string
}

// Load resolves the configuration.
func Load(opts Options) (*Result, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		workDir = wd
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	res := &Result{Config: Default()}

	path := opts.ExplicitPath
	required := path != ""
	if path == "" {
		path = filepath.Join(workDir, ProjectFileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	fileCfg, err := readFile(path)
	switch {
	case err == nil:
		res.Config = merge(res.Config, fileCfg)
		res.LoadedFrom = path
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	res.Config = merge(res.Config, fromEnv(getenv))
	res.Config = merge(res.Config, opts.Overrides)

	if err := res.Config.Validate(); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(res.Config.File) {
		res.Config.File = filepath.Join(workDir, res.Config.File)
	}
	return res, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return errors.New("config: file must not be empty")
	}
	if !slices.Contains(ui.Themes, strings.ToLower(c.Theme)) {
		return fmt.Errorf("config: unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.Themes, ", "))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: unknown color mode %q (want auto, always or never)", c.Color)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

func readFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty document decodes to io.EOF; treat it as no settings.
		if len(bytes.TrimSpace(b)) == 0 {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

func fromEnv(getenv func(string) string) Config {
	return Config{
		File:     getenv(envPrefix + "FILE"),
		Theme:    getenv(envPrefix + "THEME"),
		Color:    getenv(envPrefix + "COLOR"),
		LogLevel: getenv(envPrefix + "LOG_LEVEL"),
	}
}

// merge overlays the non-empty fields of top onto base.
func merge(base, top Config) Config {
	if top.File != "" {
		base.File = top.File
	}
	if top.Theme != "" {
		base.Theme = top.Theme
	}
	if top.Color != "" {
		base.Color = top.Color
	}
	if top.LogLevel != "" {
		base.LogLevel = top.LogLevel
	}
	return base
}
