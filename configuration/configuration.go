package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/controlactions/ierrors"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = ierrors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return ierrors.Wrapf(ErrConfigDoesNotExist, "%s", filePath)
		}

		return ierrors.Wrapf(err, "unable to access config file %s", filePath)
	}
	if info.IsDir() {
		return ierrors.Errorf("given path is a directory instead of a file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "unable to load config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Set sets the value of the given key, overwriting any value loaded before.
func (c *Configuration) Set(key string, value interface{}) error {
	return c.config.Load(confmap.Provider(map[string]interface{}{
		strings.ToLower(key): value,
	}, "."), nil)
}

// Exists returns true if the given key exists in the config.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// Get returns the raw, uncast value of the given key (nil if it does not exist).
func (c *Configuration) Get(key string) interface{} {
	return c.config.Get(strings.ToLower(key))
}

// String returns the string value of the given key (or an empty string).
func (c *Configuration) String(key string) string {
	return cast.ToString(c.Get(key))
}

// Strings returns the string slice value of the given key. Comma separated strings are split.
func (c *Configuration) Strings(key string) []string {
	value := c.Get(key)
	if stringValue, isString := value.(string); isString {
		if stringValue == "" {
			return nil
		}

		parts := strings.Split(stringValue, ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		return parts
	}

	return cast.ToStringSlice(value)
}

// Bool returns the bool value of the given key (false if it does not exist or can not be cast).
func (c *Configuration) Bool(key string) bool {
	return cast.ToBool(c.Get(key))
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// parserForFile returns the lower-casing parser that matches the extension of the given file.
func parserForFile(filePath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return &JSONLowerParser{}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "%s", filePath)
	}
}
