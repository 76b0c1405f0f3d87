package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/orderdesk/orderdesk/internal/domain"
)

const fileName = ".orderdesk.yaml"

// envBaseURL overrides api.base_url when set, regardless of the file.
const envBaseURL = "ORDERDESK_API_URL"

// YAMLLoader implements domain.ConfigLoader by reading .orderdesk.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .orderdesk.yaml from dir. Returns DefaultConfig if the file
// does not exist; unset fields fall back to the defaults.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env override
	case err != nil:
		return domain.Config{}, err
	default:
		var loaded domain.Config
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
		// Validate before merging — catches typos in the user's raw input.
		if err := loaded.Validate(); err != nil {
			return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
		}
		if loaded.API.BaseURL != "" {
			cfg.API.BaseURL = loaded.API.BaseURL
		}
		if loaded.API.TimeoutSeconds > 0 {
			cfg.API.TimeoutSeconds = loaded.API.TimeoutSeconds
		}
	}

	if url := os.Getenv(envBaseURL); url != "" {
		cfg.API.BaseURL = url
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}
