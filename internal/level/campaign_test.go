package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validLevel(id int) Config {
	return Config{
		ID:            id,
		TimeLimit:     30,
		GoodRequired:  5,
		DecoyTotal:    10,
		MaxGoodSpawns: 8,
		SpawnInterval: 1,
		DecoyPenalty:  3,
		DuckLifetime:  4,
		Sizes:         SizeWeights{Large: 0.5, Medium: 0.3, Small: 0.2},
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero id", func(c *Config) { c.ID = 0 }},
		{"zero time limit", func(c *Config) { c.TimeLimit = 0 }},
		{"negative time limit", func(c *Config) { c.TimeLimit = -5 }},
		{"zero spawn interval", func(c *Config) { c.SpawnInterval = 0 }},
		{"zero duck lifetime", func(c *Config) { c.DuckLifetime = 0 }},
		{"negative good required", func(c *Config) { c.GoodRequired = -1 }},
		{"negative decoy total", func(c *Config) { c.DecoyTotal = -1 }},
		{"cap below quota", func(c *Config) { c.MaxGoodSpawns = 4 }},
		{"negative penalty", func(c *Config) { c.DecoyPenalty = -1 }},
		{"negative weight", func(c *Config) { c.Sizes.Medium = -0.1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validLevel(1)
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestValidateAcceptsGoodConfig(t *testing.T) {
	cfg := validLevel(1)
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestNewCampaignRejectsDuplicates(t *testing.T) {
	_, err := NewCampaign([]Config{validLevel(1), validLevel(1)})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewCampaignRejectsEmpty(t *testing.T) {
	if _, err := NewCampaign(nil); err == nil {
		t.Errorf("expected error for empty campaign")
	}
}

func TestCampaignLoadAndOrder(t *testing.T) {
	c, err := NewCampaign([]Config{validLevel(1), validLevel(2), validLevel(5)})
	if err != nil {
		t.Fatalf("NewCampaign failed: %v", err)
	}

	if c.FirstID() != 1 {
		t.Errorf("FirstID=%d, want 1", c.FirstID())
	}
	if c.Len() != 3 {
		t.Errorf("Len=%d, want 3", c.Len())
	}

	cfg, err := c.Load(2)
	if err != nil {
		t.Fatalf("Load(2) failed: %v", err)
	}
	if cfg.ID != 2 {
		t.Errorf("loaded level %d, want 2", cfg.ID)
	}

	if _, err := c.Load(99); err == nil {
		t.Errorf("expected error for unknown id")
	}

	// Campaign order follows list order, not id arithmetic.
	if next, ok := c.NextID(2); !ok || next != 5 {
		t.Errorf("NextID(2)=(%d,%v), want (5,true)", next, ok)
	}
	if _, ok := c.NextID(5); ok {
		t.Errorf("expected no next after the last level")
	}
	if _, ok := c.NextID(99); ok {
		t.Errorf("expected no next for unknown id")
	}
}

func TestLoadReturnsCopy(t *testing.T) {
	c, err := NewCampaign([]Config{validLevel(1)})
	if err != nil {
		t.Fatalf("NewCampaign failed: %v", err)
	}

	cfg, _ := c.Load(1)
	cfg.GoodRequired = 99

	again, _ := c.Load(1)
	if again.GoodRequired != 5 {
		t.Errorf("campaign state mutated through a loaded config")
	}
}

func TestLoadCampaignCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	data := `levels:
  - id: 1
    time_limit: 20
    good_required: 3
    decoy_total: 6
    max_good_spawns: 5
    spawn_interval: 0.8
    decoy_penalty: 2
    duck_lifetime: 3
    sizes:
      large: 0.4
      medium: 0.4
      small: 0.2
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write levels file: %v", err)
	}

	c, err := LoadCampaign(path)
	if err != nil {
		t.Fatalf("LoadCampaign failed: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 level, got %d", c.Len())
	}

	cfg, err := c.Load(1)
	if err != nil {
		t.Fatalf("Load(1) failed: %v", err)
	}
	if cfg.TimeLimit != 20 || cfg.GoodRequired != 3 || cfg.Sizes.Medium != 0.4 {
		t.Errorf("parsed config mismatch: %+v", cfg)
	}
}

func TestLoadCampaignMissingCustomPathFails(t *testing.T) {
	if _, err := LoadCampaign(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected hard error for an explicit missing path")
	}
}

func TestLoadCampaignInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("levels: [not a mapping"), 0644); err != nil {
		t.Fatalf("failed to write levels file: %v", err)
	}

	if _, err := LoadCampaign(path); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestEmbeddedDefaultCampaignIsValid(t *testing.T) {
	c, err := parseCampaign(defaultLevelsYAML, "embedded")
	if err != nil {
		t.Fatalf("embedded campaign invalid: %v", err)
	}
	if c.Len() == 0 {
		t.Fatalf("embedded campaign is empty")
	}

	// Each level must be reachable from the first by following NextID.
	seen := 1
	id := c.FirstID()
	for {
		next, ok := c.NextID(id)
		if !ok {
			break
		}
		id = next
		seen++
	}
	if seen != c.Len() {
		t.Errorf("campaign chain covers %d of %d levels", seen, c.Len())
	}
}

func TestHardcodedDefaultsAreValid(t *testing.T) {
	if _, err := NewCampaign(DefaultLevels()); err != nil {
		t.Errorf("hardcoded defaults invalid: %v", err)
	}
}
