package config

import (
	"fmt"
	"sort"
)

// Profile is a named set of figure sizes. Zero fields leave the config as is.
type Profile struct {
	Format     string
	Width      float64
	Height     float64
	TermWidth  int
	TermHeight int
}

var Profiles = map[string]Profile{
	"screen": {
		Width: 16, Height: 5,
		TermWidth: 100, TermHeight: 14,
	},
	"paper": {
		Format: "pdf",
		Width:  7, Height: 2.6,
	},
	"compact": {
		Width: 10, Height: 3.5,
		TermWidth: 60, TermHeight: 8,
	},
}

func GetProfile(name string) *Profile {
	p, ok := Profiles[name]
	if !ok {
		return nil
	}
	return &p
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) ApplyProfile(name string) error {
	p := GetProfile(name)
	if p == nil {
		return fmt.Errorf("unknown profile: %s (available: %v)", name, ListProfiles())
	}
	if p.Format != "" {
		c.Output.Format = p.Format
	}
	if p.Width > 0 {
		c.Output.Width = p.Width
	}
	if p.Height > 0 {
		c.Output.Height = p.Height
	}
	if p.TermWidth > 0 {
		c.Terminal.Width = p.TermWidth
	}
	if p.TermHeight > 0 {
		c.Terminal.Height = p.TermHeight
	}
	return nil
}
