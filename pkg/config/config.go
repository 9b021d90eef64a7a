package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/logging"
	"github.com/arthur-debert/barfmt/pkg/render"
	"github.com/arthur-debert/barfmt/pkg/render/term"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment
const (
	// EnvPrefix prefixes every environment override, e.g. BARFMT_BACKEND
	EnvPrefix = "BARFMT_"
	// EnvConfigFile points at an explicit config file
	EnvConfigFile = "BARFMT_CONFIG"
)

// DirName is the barfmt directory under the XDG config home
const DirName = "barfmt"

// Config is the complete barfmt configuration
type Config struct {
	Backend string        `koanf:"backend"`
	Logging LoggingConfig `koanf:"logging"`
	I3bar   I3barConfig   `koanf:"i3bar"`
	Term    TermConfig    `koanf:"term"`

	// Path is the user config file that was loaded, if any
	Path string `koanf:"-"`
}

// LoggingConfig configures pkg/logging
type LoggingConfig struct {
	Verbosity int  `koanf:"verbosity"`
	File      bool `koanf:"file"`
}

// I3barConfig configures the i3bar backend
type I3barConfig struct {
	Name string `koanf:"name"`
}

// TermConfig configures the term backend
type TermConfig struct {
	Profile string `koanf:"profile"`
}

// Options selects the sources Load reads
type Options struct {
	// Path is an explicit config file; it must exist. Empty searches the
	// XDG config directories.
	Path string
	// Overrides are applied last, keyed by dotted path ("i3bar.name")
	Overrides map[string]interface{}
	// SkipEnv ignores BARFMT_* variables
	SkipEnv bool
}

// Load reads the layered configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path := opts.Path
	if path == "" && !opts.SkipEnv {
		path = os.Getenv(EnvConfigFile)
	}
	explicit := path != ""
	if !explicit {
		path = findUserConfig()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if explicit {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "config file not found").
					WithDetail("path", path)
			}
			path = ""
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps BARFMT_I3BAR__NAME to i3bar.name
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// findUserConfig returns the first config file found in the XDG config
// directories, or ""
func findUserConfig() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join(DirName, name)); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks values that cannot be expressed by the types alone
func (c *Config) Validate() error {
	if _, err := render.ParseBackend(c.Backend); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid backend").WithDetail("key", "backend")
	}
	if _, err := term.ParseProfile(c.Term.Profile, nil); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid term profile").WithDetail("key", "term.profile")
	}
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging verbosity must not be negative, got %d", c.Logging.Verbosity).
			WithDetail("key", "logging.verbosity")
	}
	return nil
}

// BackendValue returns the configured backend
func (c *Config) BackendValue() render.Backend {
	b, _ := render.ParseBackend(c.Backend)
	return b
}

// RenderOptions converts the backend settings for render.New
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		BlockName:   c.I3bar.Name,
		TermProfile: c.Term.Profile,
	}
}

// Renderer builds the configured renderer
func (c *Config) Renderer() (render.Renderer, error) {
	return render.New(c.BackendValue(), c.RenderOptions())
}
