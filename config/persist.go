package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// ErrExists is returned by WriteDefault when the target exists and force is false.
var ErrExists = errors.New("config: file already exists")

// WriteDefault writes Default() as TOML to path. An existing file is only
// replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(errors.Wrapf(ErrExists, "%s", path), "pass --force to overwrite")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "config: create %s", path)
	}
	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		f.Close()
		return errors.Wrapf(err, "config: encode %s", path)
	}

	return errors.Wrapf(f.Close(), "config: close %s", path)
}
