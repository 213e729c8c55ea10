package memengine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the engine-side layout configuration: which pouches a save has,
// slot limits, the fashion wardrobe, and where colorful screws are hidden.
type Tuning struct {
	Game         string         `yaml:"game"`
	MaxItemCount int32          `yaml:"max_item_count"`
	Pouches      []PouchDef     `yaml:"pouches"`
	Fashion      []FashionDef   `yaml:"fashion"`
	ScrewZones   []ScrewZoneDef `yaml:"screw_zones"`
}

type PouchDef struct {
	Type  string `yaml:"type"`
	Slots int    `yaml:"slots"`
}

type FashionDef struct {
	Category string `yaml:"category"`
	Pieces   int    `yaml:"pieces"`
}

type ScrewZoneDef struct {
	Zone  string `yaml:"zone"`
	Count int    `yaml:"count"`
}

// DefaultTuning returns the layout used when no tuning file is given.
func DefaultTuning() Tuning {
	return Tuning{
		Game:         "Emerald",
		MaxItemCount: 999,
		Pouches: []PouchDef{
			{Type: "items", Slots: 30},
			{Type: "key_items", Slots: 30},
			{Type: "balls", Slots: 16},
			{Type: "tms_hms", Slots: 64},
			{Type: "berries", Slots: 46},
		},
		Fashion: []FashionDef{
			{Category: "tops", Pieces: 24},
			{Category: "bottoms", Pieces: 18},
			{Category: "hats", Pieces: 12},
			{Category: "shoes", Pieces: 10},
			{Category: "bags", Pieces: 8},
			{Category: "accessories", Pieces: 16},
			{Category: "hair", Pieces: 15},
			{Category: "makeup", Pieces: 9},
		},
		ScrewZones: []ScrewZoneDef{
			{Zone: "beach", Count: 3},
			{Zone: "plaza", Count: 2},
			{Zone: "forest", Count: 3},
			{Zone: "cavern", Count: 4},
			{Zone: "summit", Count: 3},
		},
	}
}

// LoadTuning reads a tuning.yaml. Missing sections fall back to defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.validate(); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

func (t Tuning) validate() error {
	if t.MaxItemCount <= 0 {
		return fmt.Errorf("max_item_count must be positive")
	}
	if len(t.Pouches) == 0 {
		return fmt.Errorf("at least one pouch required")
	}
	seen := map[string]bool{}
	for _, p := range t.Pouches {
		if p.Type == "" || p.Slots <= 0 {
			return fmt.Errorf("bad pouch definition %q", p.Type)
		}
		if seen[p.Type] {
			return fmt.Errorf("duplicate pouch type %q", p.Type)
		}
		seen[p.Type] = true
	}
	for _, f := range t.Fashion {
		if f.Category == "" || f.Pieces <= 0 {
			return fmt.Errorf("bad fashion category %q", f.Category)
		}
	}
	return nil
}
