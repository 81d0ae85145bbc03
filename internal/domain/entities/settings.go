package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultRequestTimeoutSeconds = 5
	defaultWorkers               = 10
	defaultManifestName          = "requirements.txt"
	defaultIndexURL              = "https://pypi.org/pypi"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings holds the runtime configuration loaded from a YAML file.
// Zero values are replaced by defaults during load.
type Settings struct {
	RequestTimeoutSeconds int      `yaml:"request_timeout_seconds"`
	Workers               int      `yaml:"workers"`
	IgnorePackages        []string `yaml:"ignore_packages"`
	DefaultManifest       string   `yaml:"default_manifest"`
	IndexURL              string   `yaml:"index_url"`
}

// DefaultSettings returns the built-in configuration used when no config
// file is present.
func DefaultSettings() *Settings {
	return &Settings{
		RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
		Workers:               defaultWorkers,
		DefaultManifest:       defaultManifestName,
		IndexURL:              defaultIndexURL,
	}
}

// NewSettings loads settings from a YAML file, expanding ${VAR} references
// from the environment before parsing.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})

	settings := DefaultSettings()
	if err = yaml.Unmarshal([]byte(expanded), settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if err = settings.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return settings, nil
}

// FindConfigFile searches the conventional locations for a config file and
// returns the first match, or an empty string when none exists.
func FindConfigFile() string {
	names := []string{".depup.yaml", ".depup.yml", "depup.yaml", "depup.yml"}
	dirs := []string{".", ".config", "configs"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home, filepath.Join(home, ".config"))
	}

	for _, dir := range dirs {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
	}
	return ""
}

// RequestTimeout returns the per-request timeout as a duration.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

func (s *Settings) validate() error {
	if s.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive, got %d", s.RequestTimeoutSeconds)
	}
	if s.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", s.Workers)
	}
	if s.DefaultManifest == "" {
		s.DefaultManifest = defaultManifestName
	}
	if s.IndexURL == "" {
		s.IndexURL = defaultIndexURL
	}
	return nil
}
