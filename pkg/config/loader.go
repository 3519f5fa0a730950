package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/logging"
	"github.com/arthur-debert/bitdoctor/pkg/paths"
)

// EnvPrefix prefixes environment overrides, e.g. BITDOCTOR_DOCTOR_MAX_WORKERS
const EnvPrefix = "BITDOCTOR_"

var sections = []string{"doctor", "workspace", "output"}

// LoadOptions selects the sources Load reads
type LoadOptions struct {
	// UserConfigPath overrides the user config file location
	UserConfigPath string
	// StartDir is searched for a .bitdoctor.toml file. Empty skips it.
	StartDir string
	// Overrides are dotted keys set from command-line flags
	Overrides map[string]interface{}
}

// Load reads every configuration source and decodes the result
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User and workspace files, when present
	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = paths.UserConfigPath()
	}
	files := []string{userPath}
	if opts.StartDir != "" {
		files = append(files, filepath.Join(opts.StartDir, paths.WorkspaceConfigFile))
	}
	for _, path := range files {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("max_workers", cfg.Doctor.MaxWorkers).
		Str("format", cfg.Output.Format).
		Msg("configuration loaded")
	return cfg, nil
}

// Defaults returns the embedded default configuration
func Defaults() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config file %s", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("loaded config file")
	return nil
}

// envKey maps BITDOCTOR_DOCTOR_MAX_WORKERS to doctor.max_workers. Only the
// first underscore separates section from key. Variables outside the known
// sections are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return ""
	}
	for _, known := range sections {
		if section == known {
			return section + "." + rest
		}
	}
	return ""
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Doctor.MaxWorkers < 0 {
		return errors.Newf(errors.ErrConfigParse, "doctor.max_workers must not be negative, got %d", cfg.Doctor.MaxWorkers)
	}
	if cfg.Output.Width < 0 {
		return errors.Newf(errors.ErrConfigParse, "output.width must not be negative, got %d", cfg.Output.Width)
	}
	if len(cfg.Workspace.Markers) == 0 {
		return errors.New(errors.ErrConfigParse, "workspace.markers must not be empty")
	}
	if len(cfg.Workspace.ScopeDirs) == 0 {
		return errors.New(errors.ErrConfigParse, "workspace.scope_dirs must not be empty")
	}
	if cfg.Workspace.ComponentsDir == "" {
		return errors.New(errors.ErrConfigParse, "workspace.components_dir must not be empty")
	}
	return nil
}
