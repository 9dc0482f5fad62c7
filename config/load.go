package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Load reads configuration with precedence defaults < file < environment.
//
// With an empty path, DefaultFileName in the working directory is used when
// present and silently skipped otherwise. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := newViper()

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			file = DefaultFileName
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", file)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper decodes a prepared viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	return &c, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}
