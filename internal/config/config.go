// Package config loads apihelper settings from apihelper.yaml, the environment
// and the project's composer.json.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/example/apihelper/internal/core/naming"
)

// FileName is the project configuration file looked up in the project directory.
const FileName = "apihelper.yaml"

// EnvPrefix prefixes environment overrides, e.g. APIHELPER_API_NAME.
const EnvPrefix = "APIHELPER"

// Configuration keys.
const (
	KeyRootNamespace       = "root_namespace"
	KeyAppPath             = "app_path"
	KeyControllerNamespace = "controller_namespace"
	KeyUserModel           = "user_model"
	KeyServicesNamespace   = "services_namespace"
	KeyAPINamespace        = "api_namespace"
	KeyAPIName             = "api_name"
	KeyStubsPath           = "stubs_path"
	KeyHistory             = "history"
	KeyHistoryDB           = "history_db"

	// KeyControllersNamespace is derived: root namespace + controller namespace.
	KeyControllersNamespace = "controllers_namespace"
)

// Defaults
const (
	DefaultRootNamespace       = `App\`
	DefaultAppPath             = "app"
	DefaultControllerNamespace = `\Http\Controllers\Api`
	DefaultUserModel           = `App\User`
	DefaultAPIName             = "ApiController"
	DefaultStubsPath           = "stubs/apihelper"
)

// Config represents the effective apihelper configuration.
type Config struct {
	RootNamespace       string `yaml:"root_namespace" mapstructure:"root_namespace" validate:"required,namespace"`
	AppPath             string `yaml:"app_path" mapstructure:"app_path" validate:"required"`
	ControllerNamespace string `yaml:"controller_namespace" mapstructure:"controller_namespace" validate:"omitempty,namespace"`
	UserModel           string `yaml:"user_model" mapstructure:"user_model" validate:"required,namespace"`
	ServicesNamespace   string `yaml:"services_namespace" mapstructure:"services_namespace" validate:"required,namespace"`
	APINamespace        string `yaml:"api_namespace" mapstructure:"api_namespace" validate:"required,namespace"`
	APIName             string `yaml:"api_name" mapstructure:"api_name" validate:"required,classname"`
	StubsPath           string `yaml:"stubs_path" mapstructure:"stubs_path" validate:"required"`
	History             bool   `yaml:"history" mapstructure:"history"`
	HistoryDB           string `yaml:"history_db,omitempty" mapstructure:"history_db"`

	// ProjectDir is the directory the configuration was loaded for.
	ProjectDir string `yaml:"-" mapstructure:"-"`
	// File is the configuration file that was read, empty if none.
	File string `yaml:"-" mapstructure:"-"`
}

// Load reads configuration for the project in dir. When file is empty,
// dir/apihelper.yaml is used if present. A missing file is not an error.
func Load(dir, file string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	appPath := getStringOrDefault(v, KeyAppPath, DefaultAppPath)
	root := v.GetString(KeyRootNamespace)
	if root == "" {
		root = DiscoverRootNamespace(dir, appPath)
	}

	cfg := &Config{
		RootNamespace:       naming.RootNamespace(root),
		AppPath:             appPath,
		ControllerNamespace: getStringOrDefault(v, KeyControllerNamespace, DefaultControllerNamespace),
		UserModel:           getStringOrDefault(v, KeyUserModel, DefaultUserModel),
		ServicesNamespace:   v.GetString(KeyServicesNamespace),
		APINamespace:        v.GetString(KeyAPINamespace),
		APIName:             getStringOrDefault(v, KeyAPIName, DefaultAPIName),
		StubsPath:           getStringOrDefault(v, KeyStubsPath, DefaultStubsPath),
		History:             getBoolOrDefault(v, KeyHistory, true),
		HistoryDB:           v.GetString(KeyHistoryDB),
		ProjectDir:          dir,
		File:                v.ConfigFileUsed(),
	}
	cfg.applyDerivedDefaults()

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Defaults returns the configuration used when no file is present.
func Defaults(rootNamespace string) *Config {
	cfg := &Config{
		RootNamespace:       naming.RootNamespace(rootNamespace),
		AppPath:             DefaultAppPath,
		ControllerNamespace: DefaultControllerNamespace,
		UserModel:           DefaultUserModel,
		APIName:             DefaultAPIName,
		StubsPath:           DefaultStubsPath,
		History:             true,
	}
	cfg.applyDerivedDefaults()
	return cfg
}

func (c *Config) applyDerivedDefaults() {
	if c.ServicesNamespace == "" {
		c.ServicesNamespace = naming.Join(c.RootNamespace, "Services")
	}
	if c.APINamespace == "" {
		c.APINamespace = c.ControllersNamespace()
	}
	c.ServicesNamespace = naming.Normalize(c.ServicesNamespace)
	c.APINamespace = naming.Normalize(c.APINamespace)
}

// ControllersNamespace returns the namespace generated controllers default to,
// e.g. App\Http\Controllers\Api.
func (c *Config) ControllersNamespace() string {
	return naming.Join(c.RootNamespace, c.ControllerNamespace)
}

// Lookup implements secondary.ConfigLookup. Unknown keys return "".
func (c *Config) Lookup(key string) string {
	switch key {
	case KeyRootNamespace:
		return c.RootNamespace
	case KeyAppPath:
		return c.AppPath
	case KeyControllerNamespace:
		return c.ControllerNamespace
	case KeyControllersNamespace:
		return c.ControllersNamespace()
	case KeyUserModel:
		return c.UserModel
	case KeyServicesNamespace:
		return c.ServicesNamespace
	case KeyAPINamespace:
		return c.APINamespace
	case KeyAPIName:
		return c.APIName
	case KeyStubsPath:
		return c.StubsPath
	case KeyHistoryDB:
		return c.HistoryDB
	case KeyHistory:
		if c.History {
			return "true"
		}
		return "false"
	}
	return ""
}

// HistoryDBPath returns the activity log database path, defaulting to
// ~/.apihelper/history.db.
func (c *Config) HistoryDBPath() (string, error) {
	if c.HistoryDB != "" {
		return c.HistoryDB, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".apihelper", "history.db"), nil
}

// SaveConfig writes cfg to dir/apihelper.yaml. An existing file is never
// overwritten.
func SaveConfig(dir string, cfg *Config) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}

	return path, nil
}

// getStringOrDefault returns string from config or default value
func getStringOrDefault(v *viper.Viper, key string, defaultValue string) string {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetString(key)
	}
	return defaultValue
}

// getBoolOrDefault returns bool from config or default value
func getBoolOrDefault(v *viper.Viper, key string, defaultValue bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return defaultValue
}
