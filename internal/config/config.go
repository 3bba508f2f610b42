// Package config loads the schedule definition: bookable resources, their
// groups, the operating-hours/view settings, and the ICS feeds that supply
// bookings. The file is YAML; a missing file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ugnoguchigxp/regular-calendar/engine"
	"github.com/ugnoguchigxp/regular-calendar/internal/ics"
)

type Config struct {
	View      View       `yaml:"view"`
	Groups    []Group    `yaml:"groups"`
	Resources []Resource `yaml:"resources"`
	Feeds     []Feed     `yaml:"feeds"`
}

// View holds the operating-hours and day-grid settings.
type View struct {
	// DayStartHour/DayEndHour bound the visible day. DayEndHour above 24
	// means operating hours spill past midnight.
	DayStartHour int `yaml:"day_start_hour"`
	DayEndHour   int `yaml:"day_end_hour"`

	// WeekStart is "monday" or "sunday".
	WeekStart string `yaml:"week_start"`

	SlotMinutes int     `yaml:"slot_minutes"`
	SlotPixels  float64 `yaml:"slot_pixels"`

	// MaxPerPage caps how many resource columns fit on one page.
	MaxPerPage int `yaml:"max_per_page"`
}

type Group struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Display   string `yaml:"display"` // "grid" or "list"
	Dimension int    `yaml:"dimension"`
}

type Resource struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Order    int    `yaml:"order"`
	Group    string `yaml:"group"`
	Disabled bool   `yaml:"disabled"`
}

type Feed struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	Resource string `yaml:"resource"`
	Group    string `yaml:"group"`
}

// Load reads a schedule definition from a YAML file. A missing file returns
// the defaults rather than an error so the CLI can run without setup.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := &Config{}
			cfg.normalize()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.View.DayEndHour == 0 {
		c.View.DayEndHour = 24
	}
	if c.View.SlotMinutes <= 0 {
		c.View.SlotMinutes = 30
	}
	if c.View.SlotPixels <= 0 {
		c.View.SlotPixels = 40
	}
	if c.View.MaxPerPage <= 0 {
		c.View.MaxPerPage = 8
	}
	switch strings.ToLower(c.View.WeekStart) {
	case "monday", "sunday":
		c.View.WeekStart = strings.ToLower(c.View.WeekStart)
	default:
		c.View.WeekStart = "monday"
	}
	for i := range c.Groups {
		if c.Groups[i].Display != string(engine.DisplayList) {
			c.Groups[i].Display = string(engine.DisplayGrid)
		}
	}
}

func (c *Config) validate() error {
	seen := map[string]bool{}
	for _, r := range c.Resources {
		if r.ID == "" {
			return errors.New("resource without an id")
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate resource id %q", r.ID)
		}
		seen[r.ID] = true
	}
	for _, f := range c.Feeds {
		if f.Resource != "" && !seen[f.Resource] {
			return fmt.Errorf("feed %q references unknown resource %q", f.ID, f.Resource)
		}
	}
	return nil
}

// Settings converts the view section into engine settings.
func (c *Config) Settings() engine.Settings {
	weekStart := time.Monday
	if c.View.WeekStart == "sunday" {
		weekStart = time.Sunday
	}
	return engine.Settings{
		DayStartHour: c.View.DayStartHour,
		DayEndHour:   c.View.DayEndHour,
		WeekStartsOn: weekStart,
		SlotMinutes:  c.View.SlotMinutes,
		SlotPixels:   c.View.SlotPixels,
	}
}

// EngineResources converts the resource list, dropping nothing: disabled
// resources still exist, they are just flagged unavailable.
func (c *Config) EngineResources() []engine.Resource {
	out := make([]engine.Resource, 0, len(c.Resources))
	for _, r := range c.Resources {
		out = append(out, engine.Resource{
			ID:        r.ID,
			Name:      r.Name,
			Order:     r.Order,
			GroupID:   r.Group,
			Available: !r.Disabled,
		})
	}
	return out
}

// EngineGroups converts the group list.
func (c *Config) EngineGroups() []engine.ResourceGroup {
	out := make([]engine.ResourceGroup, 0, len(c.Groups))
	for _, g := range c.Groups {
		out = append(out, engine.ResourceGroup{
			ID:        g.ID,
			Name:      g.Name,
			Display:   engine.DisplayMode(g.Display),
			Dimension: g.Dimension,
		})
	}
	return out
}

// EngineFeeds converts the feed list.
func (c *Config) EngineFeeds() []ics.Feed {
	out := make([]ics.Feed, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		out = append(out, ics.Feed{
			ID:         f.ID,
			Name:       f.Name,
			Path:       f.Path,
			ResourceID: f.Resource,
			GroupID:    f.Group,
		})
	}
	return out
}
