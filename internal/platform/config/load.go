package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Option adjusts Load.
type Option func(*loader)

type loader struct {
	dir string
}

// WithConfigDir reads the config files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// Load builds the Config for profile. Later layers win:
//
//  1. built-in defaults
//  2. {dir}/base.yaml
//  3. {dir}/{profile}.yaml
//  4. APP_* environment variables
//
// Each file may instead be .yml or .json. Env names are matched against
// the known keys, so APP_CLIENT_RETRY_MAX_ATTEMPTS sets
// client.retry.max_attempts and APP_SESSION_SQLITE_PATH sets
// session.sqlite_path.
func Load(profile string, opts ...Option) (*Config, error) {
	if !profilePattern.MatchString(profile) {
		return nil, fmt.Errorf("invalid profile %q: want letters, digits, '-' or '_'", profile)
	}

	l := loader{dir: "configs"}
	for _, opt := range opts {
		opt(&l)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		if err := l.loadFile(k, name); err != nil {
			return nil, err
		}
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

var parsers = []struct {
	ext    string
	parser koanf.Parser
}{
	{".yaml", yaml.Parser()},
	{".yml", yaml.Parser()},
	{".json", json.Parser()},
}

// loadFile merges the first of name.yaml, name.yml and name.json found in
// the config directory.
func (l loader) loadFile(k *koanf.Koanf, name string) error {
	for _, p := range parsers {
		path := filepath.Join(l.dir, name+p.ext)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := k.Load(file.Provider(path), p.parser); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no %s config in %s: %w", name, l.dir, fs.ErrNotExist)
}

// loadEnv overlays APP_* variables. Every key already exists once defaults
// are loaded, which is what makes underscores inside key names unambiguous.
func loadEnv(k *koanf.Koanf) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}
	return nil
}
