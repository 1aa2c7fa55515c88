package globals

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/lppm/pkg/errors"
	"github.com/arthur-debert/lppm/pkg/logging"
	"github.com/arthur-debert/lppm/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

const fileHeader = `# Global substitution variables for lppm.
# Manage this file with the "lppm globals" commands.

`

type document struct {
	Variables map[string]string `toml:"variables"`
}

// Store holds the global variables loaded from a globals file
type Store struct {
	fs        types.FS
	path      string
	confirmer types.Confirmer
	values    map[string]string
	logger    zerolog.Logger
}

// Load reads the globals file at path. A missing file yields an empty store.
func Load(fsys types.FS, path string, confirmer types.Confirmer) (*Store, error) {
	s := &Store{
		fs:        fsys,
		path:      path,
		confirmer: confirmer,
		values:    map[string]string{},
		logger:    logging.GetLogger("globals"),
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn().
				Str("path", path).
				Msg("Globals file not found, run `lppm globals init` to create it")
			return s, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "could not read globals file `%s`", path)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFormat, "malformed globals file `%s`", path).
			WithDetail("path", path)
	}
	for key, value := range doc.Variables {
		key = strings.TrimSpace(key)
		if key == "" {
			s.logger.Warn().Str("path", path).Msg("Ignoring global variable with empty name")
			continue
		}
		s.values[key] = strings.TrimSpace(value)
	}

	s.logger.Debug().Str("path", path).Int("count", len(s.values)).Msg("Loaded globals")
	return s, nil
}

// Path returns the location of the globals file
func (s *Store) Path() string {
	return s.path
}

// Get returns the value of key
func (s *Store) Get(key string) (string, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}
	value, ok := s.values[key]
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "globals file does not contain an entry with key `%s`", key).
			WithDetail("key", key)
	}
	return value, nil
}

// Contains reports whether key is set
func (s *Store) Contains(key string) bool {
	_, ok := s.values[strings.TrimSpace(key)]
	return ok
}

// Set stores value under key. Overriding a different existing value needs
// confirmation and fails if it is declined.
func (s *Store) Set(key, value string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)

	if old, ok := s.values[key]; ok && old != value {
		confirmed, err := s.confirmer.Confirm(fmt.Sprintf(
			"global variable `%s` is `%s`; override it with `%s`?", key, old, value))
		if err != nil {
			return err
		}
		if !confirmed {
			return errors.Newf(errors.ErrConfirmationDenied,
				"did not consent to overriding the global variable `%s`", key).
				WithDetail("key", key)
		}
	}

	s.values[key] = value
	return nil
}

// Unset removes key
func (s *Store) Unset(key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if _, ok := s.values[key]; !ok {
		return errors.Newf(errors.ErrNotFound, "globals file does not contain an entry with key `%s`", key).
			WithDetail("key", key)
	}
	delete(s.values, key)
	return nil
}

// Keys returns the variable names in sorted order
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Mapping returns a copy of all variables
func (s *Store) Mapping() types.Mapping {
	return types.Mapping(s.values).Clone()
}

// Save writes the store back to its file, creating parent directories
func (s *Store) Save() error {
	data, err := toml.Marshal(document{Variables: s.values})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "could not encode globals")
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not create directory for globals file `%s`", s.path)
	}
	if err := s.fs.WriteFile(s.path, append([]byte(fileHeader), data...), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "could not write globals file `%s`", s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("count", len(s.values)).Msg("Saved globals")
	return nil
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New(errors.ErrInvalidInput, "provided key is empty")
	}
	return key, nil
}
