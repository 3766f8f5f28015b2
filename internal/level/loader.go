package level

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// levelFile is the on-disk campaign format.
type levelFile struct {
	Levels []Config `yaml:"levels"`
}

// LoadCampaign loads the campaign level list.
// Search order: customPath -> ~/.duckhunt/levels.yaml -> ./configs/levels.yaml -> embedded default
func LoadCampaign(customPath string) (*Campaign, error) {
	// Try custom path first; an explicit path failing is a hard error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("level: failed to read %s: %w", customPath, err)
		}
		return parseCampaign(data, customPath)
	}

	// Try user config directory
	if userPath := userConfigPath("levels.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if c, err := parseCampaign(data, userPath); err == nil {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/levels.yaml"); err == nil {
		if c, err := parseCampaign(data, "configs/levels.yaml"); err == nil {
			return c, nil
		}
	}

	// Use embedded default YAML
	if c, err := parseCampaign(defaultLevelsYAML, "embedded"); err == nil {
		return c, nil
	}

	// Fallback to hardcoded levels if embed fails
	return NewCampaign(DefaultLevels())
}

// parseCampaign unmarshals and validates a campaign file.
func parseCampaign(data []byte, source string) (*Campaign, error) {
	var file levelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("level: failed to parse %s: %w", source, err)
	}

	c, err := NewCampaign(file.Levels)
	if err != nil {
		return nil, fmt.Errorf("level: invalid campaign in %s: %w", source, err)
	}
	return c, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duckhunt", filename)
}
