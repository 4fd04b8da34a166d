package config

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/pkg/errors"
)

// DirEnv overrides the config directory.
const DirEnv = "CCHAT_BUBBLE_CONFIG_DIR"

var configDir struct {
	once sync.Once
	path string
}

func findDir() string {
	if d := os.Getenv(DirEnv); d != "" {
		return d
	}

	d, err := os.UserConfigDir()
	if err != nil {
		log.Error(errors.Wrap(err, "failed to get config dir, using temp dir"))
		d = os.TempDir()
	}

	return filepath.Join(d, "cchat-bubble")
}

// DirPath returns the config directory. It is looked up once.
func DirPath() string {
	configDir.once.Do(func() { configDir.path = findDir() })
	return configDir.path
}

// MarshalToFile writes from as indented JSON into file inside the config
// directory. The file is replaced atomically, so a failed write never leaves
// a truncated config behind.
func MarshalToFile(file string, from interface{}) error {
	b, err := json.MarshalIndent(from, "", "\t")
	if err != nil {
		return errors.Wrap(err, "failed to marshal")
	}

	path := filepath.Join(DirPath(), file)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config dir")
	}

	f, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(append(b, '\n')); err != nil {
		f.Close()
		return errors.Wrap(err, "failed to write temp file")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}

	return errors.Wrap(os.Rename(f.Name(), path), "failed to replace file")
}

// UnmarshalFromFile reads file inside the config directory into to. A missing
// or empty file leaves to untouched and is not an error.
func UnmarshalFromFile(file string, to interface{}) error {
	b, err := ioutil.ReadFile(filepath.Join(DirPath(), file))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "failed to read file")
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(b, to), "failed to unmarshal")
}
