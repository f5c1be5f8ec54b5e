// ABOUTME: Settings loading with global + project YAML merge and PKGFIND_* env overrides
// ABOUTME: viper reads the files; go-playground/validator checks the merged result

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. PKGFIND_PACKAGE_MANAGER.
const EnvPrefix = "PKGFIND"

// Defaults.
const (
	DefaultPackageManager = "npm"
	DefaultRegistryURL    = "https://www.npmjs.org/package/"
	DefaultInclude        = "**/package.json"
	DefaultExclude        = "**/node_modules/**"
)

// Config holds the merged configuration.
type Config struct {
	PackageManager string         `mapstructure:"package_manager" yaml:"package_manager" validate:"required"`
	RegistryURL    string         `mapstructure:"registry_url" yaml:"registry_url" validate:"required,url"`
	Manifest       ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	LogFile        string         `mapstructure:"log_file" yaml:"log_file"`
	Verbose        bool           `mapstructure:"verbose" yaml:"verbose"`
}

// ManifestConfig controls which manifests are install targets.
type ManifestConfig struct {
	Include string `mapstructure:"include" yaml:"include" validate:"required"`
	Exclude string `mapstructure:"exclude" yaml:"exclude"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		RegistryURL:    DefaultRegistryURL,
		Manifest: ManifestConfig{
			Include: DefaultInclude,
			Exclude: DefaultExclude,
		},
		LogFile: DefaultLogFile(),
	}
}

// LoadOptions selects which files Load reads.
type LoadOptions struct {
	// ConfigFile, when set, is the only file read. It must exist.
	ConfigFile string
	// ProjectRoot locates .pkgfind/config.yaml. Empty skips the project file.
	ProjectRoot string
	// GlobalFile overrides GlobalConfigFile(); used by tests.
	GlobalFile string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the global config, then the project config over it, then
// environment overrides. Missing files are not an error.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		if err := mergeFile(v, opts.ConfigFile, true); err != nil {
			return nil, err
		}
	} else {
		global := opts.GlobalFile
		if global == "" {
			global = GlobalConfigFile()
		}
		if err := mergeFile(v, global, false); err != nil {
			return nil, fmt.Errorf("loading global config: %w", err)
		}
		if opts.ProjectRoot != "" {
			if err := mergeFile(v, ProjectConfigFile(opts.ProjectRoot), false); err != nil {
				return nil, fmt.Errorf("loading project config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("package_manager", d.PackageManager)
	v.SetDefault("registry_url", d.RegistryURL)
	v.SetDefault("manifest.include", d.Manifest.Include)
	v.SetDefault("manifest.exclude", d.Manifest.Exclude)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("verbose", d.Verbose)
}

// mergeFile merges the YAML file at path into v. A missing file is skipped
// unless required is set.
func mergeFile(v *viper.Viper, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Validate checks required fields and URL syntax.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(out), nil
}
