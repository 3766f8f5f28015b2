package level

import "fmt"

// Campaign is an ordered set of levels. It serves the session controller as
// the level source: loading a level by id and answering which level comes
// after the current one. "No next id" is the game-complete signal.
type Campaign struct {
	levels []Config
	byID   map[int]int // id -> index into levels
}

// NewCampaign builds a campaign from an ordered level list.
// Every level is validated; duplicate ids are rejected.
func NewCampaign(levels []Config) (*Campaign, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("level: campaign has no levels")
	}

	byID := make(map[int]int, len(levels))
	for i := range levels {
		if err := levels[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[levels[i].ID]; dup {
			return nil, fmt.Errorf("level: duplicate level id %d", levels[i].ID)
		}
		byID[levels[i].ID] = i
	}

	return &Campaign{levels: levels, byID: byID}, nil
}

// Load returns the config for the given level id.
func (c *Campaign) Load(id int) (*Config, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("level: unknown level id %d", id)
	}

	// Copy so callers cannot mutate campaign state.
	cfg := c.levels[i]
	return &cfg, nil
}

// NextID returns the id of the level following the given one in campaign
// order. The second return is false when the given level is the last.
func (c *Campaign) NextID(id int) (int, bool) {
	i, ok := c.byID[id]
	if !ok || i+1 >= len(c.levels) {
		return 0, false
	}
	return c.levels[i+1].ID, true
}

// FirstID returns the id of the first level in campaign order.
func (c *Campaign) FirstID() int {
	return c.levels[0].ID
}

// Len returns the number of levels in the campaign.
func (c *Campaign) Len() int {
	return len(c.levels)
}

// All returns the campaign levels in order.
func (c *Campaign) All() []Config {
	out := make([]Config, len(c.levels))
	copy(out, c.levels)
	return out
}
