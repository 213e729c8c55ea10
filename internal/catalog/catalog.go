// Package catalog holds the static reference data the engine answers
// session-independent queries from: species with per-generation base stats
// and forms, evolution chains, and the item table. Catalogs load from a
// config directory or from the embedded defaults, and each file carries a
// sha256 digest so servers can advertise what data they run on.
package catalog

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var defaultFS embed.FS

type Catalogs struct {
	Species    SpeciesCatalog
	Evolutions EvolutionCatalog
	Items      ItemCatalog
}

type SpeciesCatalog struct {
	ByID   map[int]SpeciesDef
	Digest string
}

type SpeciesDef struct {
	Species int       `json:"species"`
	Name    string    `json:"name"`
	Forms   []FormDef `json:"forms"`
}

type FormDef struct {
	FormIndex int `json:"form_index"`
	FormName  string `json:"form_name"`
	// MinGen is the first generation the form exists in (0 = always).
	MinGen int `json:"min_gen,omitempty"`
	// Stats maps a generation to [hp, attack, defense, spAtk, spDef, speed].
	// Lookup picks the highest key <= the requested generation.
	Stats map[string][6]int `json:"stats"`
}

type EvolutionCatalog struct {
	Chains [][]EvoStage
	// ByMember maps a species id to the index of the chain containing it.
	ByMember map[int]int
	Digest   string
}

type EvoStage struct {
	Species int    `json:"species"`
	Form    int    `json:"form"`
	Method  string `json:"method,omitempty"`
	Level   int    `json:"level,omitempty"`
	// MinGen is the first generation the stage exists in (0 = always).
	MinGen int `json:"min_gen,omitempty"`
}

type ItemCatalog struct {
	ByID   map[int]ItemDef
	Digest string
}

type ItemDef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Pouch string `json:"pouch,omitempty"`
}

// Load reads species.json, evolutions.json and items.json from configDir.
func Load(configDir string) (*Catalogs, error) {
	read := func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(configDir, name))
	}
	return load(read)
}

// Default returns the catalogs embedded in the binary.
func Default() (*Catalogs, error) {
	read := func(name string) ([]byte, error) {
		return defaultFS.ReadFile("data/" + name)
	}
	return load(read)
}

func load(read func(name string) ([]byte, error)) (*Catalogs, error) {
	var c Catalogs
	if err := loadSpecies(read, &c.Species); err != nil {
		return nil, err
	}
	if err := loadEvolutions(read, &c.Evolutions); err != nil {
		return nil, err
	}
	if err := loadItems(read, &c.Items); err != nil {
		return nil, err
	}
	return &c, nil
}

// StatsForGen resolves a form's base stats for the requested generation.
func (f FormDef) StatsForGen(gen int) ([6]int, bool) {
	best := -1
	var out [6]int
	for key, stats := range f.Stats {
		var g int
		if _, err := fmt.Sscanf(key, "%d", &g); err != nil {
			continue
		}
		if g <= gen && g > best {
			best = g
			out = stats
		}
	}
	if best < 0 {
		return [6]int{}, false
	}
	return out, true
}

// Chain returns the evolution chain containing species, or nil.
func (e EvolutionCatalog) Chain(species int) []EvoStage {
	idx, ok := e.ByMember[species]
	if !ok {
		return nil
	}
	return e.Chains[idx]
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func loadSpecies(read func(string) ([]byte, error), out *SpeciesCatalog) error {
	raw, err := read("species.json")
	if err != nil {
		return err
	}
	out.Digest = sha256Hex(raw)

	var defs []SpeciesDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("species.json: %w", err)
	}
	out.ByID = map[int]SpeciesDef{}
	for _, d := range defs {
		if d.Species <= 0 {
			return fmt.Errorf("species.json: bad species id %d", d.Species)
		}
		if len(d.Forms) == 0 {
			return fmt.Errorf("species.json: %s has no forms", d.Name)
		}
		for i, f := range d.Forms {
			if f.FormIndex != i {
				return fmt.Errorf("species.json: %s form %d out of order", d.Name, f.FormIndex)
			}
		}
		out.ByID[d.Species] = d
	}
	return nil
}

func loadEvolutions(read func(string) ([]byte, error), out *EvolutionCatalog) error {
	raw, err := read("evolutions.json")
	if err != nil {
		return err
	}
	out.Digest = sha256Hex(raw)

	var defs []struct {
		Chain []EvoStage `json:"chain"`
	}
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("evolutions.json: %w", err)
	}
	out.ByMember = map[int]int{}
	for i, d := range defs {
		if len(d.Chain) == 0 {
			return fmt.Errorf("evolutions.json: empty chain at %d", i)
		}
		out.Chains = append(out.Chains, d.Chain)
		for _, st := range d.Chain {
			if _, dup := out.ByMember[st.Species]; dup {
				return fmt.Errorf("evolutions.json: species %d in two chains", st.Species)
			}
			out.ByMember[st.Species] = i
		}
	}
	return nil
}

func loadItems(read func(string) ([]byte, error), out *ItemCatalog) error {
	raw, err := read("items.json")
	if err != nil {
		return err
	}
	out.Digest = sha256Hex(raw)

	var defs []ItemDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("items.json: %w", err)
	}
	out.ByID = map[int]ItemDef{}
	for _, d := range defs {
		if d.ID <= 0 {
			return fmt.Errorf("items.json: bad item id %d", d.ID)
		}
		if d.Name == "" {
			return fmt.Errorf("items.json: item %d has empty name", d.ID)
		}
		out.ByID[d.ID] = d
	}
	return nil
}
