package memengine

import (
	"fmt"

	"github.com/monokrome/pkhex-go/internal/boundary"
)

type formSetWire struct {
	Species     int        `json:"species"`
	SpeciesName string     `json:"speciesName"`
	Generation  int        `json:"generation"`
	Forms       []formWire `json:"forms"`
}

type formWire struct {
	FormIndex int       `json:"formIndex"`
	FormName  string    `json:"formName"`
	BaseStats statsWire `json:"baseStats"`
}

type statsWire struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	SpAtk   int `json:"spAtk"`
	SpDef   int `json:"spDef"`
	Speed   int `json:"speed"`
}

type evoChainWire struct {
	Species        int            `json:"species"`
	Generation     int            `json:"generation"`
	EvolutionChain []evoStageWire `json:"evolutionChain"`
}

type evoStageWire struct {
	Species     int    `json:"species"`
	SpeciesName string `json:"speciesName"`
	Form        int    `json:"form"`
	Method      string `json:"method,omitempty"`
	Level       int    `json:"level,omitempty"`
}

func checkGeneration(gen int32) error {
	if gen < 1 || gen > 9 {
		return fmt.Errorf("unsupported generation: %d", gen)
	}
	return nil
}

// opGetSpeciesForms answers the static form query. Form order follows the
// catalog's in-game ordering; it is never re-sorted here.
func opGetSpeciesForms(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetSpeciesForms, args, 2); err != nil {
		return nil, err
	}
	species, err := argInt32(args, 0)
	if err != nil {
		return nil, err
	}
	gen, err := argInt32(args, 1)
	if err != nil {
		return nil, err
	}
	if err := checkGeneration(gen); err != nil {
		return nil, err
	}
	def, ok := e.cats.Species.ByID[int(species)]
	if !ok {
		return nil, fmt.Errorf("unknown species: %d", species)
	}

	out := formSetWire{
		Species:     def.Species,
		SpeciesName: def.Name,
		Generation:  int(gen),
		Forms:       []formWire{},
	}
	for _, f := range def.Forms {
		if f.MinGen > int(gen) {
			continue
		}
		stats, ok := f.StatsForGen(int(gen))
		if !ok {
			continue
		}
		out.Forms = append(out.Forms, formWire{
			FormIndex: f.FormIndex,
			FormName:  f.FormName,
			BaseStats: statsWire{
				HP:      stats[0],
				Attack:  stats[1],
				Defense: stats[2],
				SpAtk:   stats[3],
				SpDef:   stats[4],
				Speed:   stats[5],
			},
		})
	}
	if len(out.Forms) == 0 {
		return nil, fmt.Errorf("species %d not present in generation %d", species, gen)
	}
	return out, nil
}

// opGetSpeciesEvolutions returns the chain containing the species, in stage
// order. A species without evolutions is its own single-stage chain.
func opGetSpeciesEvolutions(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetSpeciesEvolutions, args, 2); err != nil {
		return nil, err
	}
	species, err := argInt32(args, 0)
	if err != nil {
		return nil, err
	}
	gen, err := argInt32(args, 1)
	if err != nil {
		return nil, err
	}
	if err := checkGeneration(gen); err != nil {
		return nil, err
	}
	def, ok := e.cats.Species.ByID[int(species)]
	if !ok {
		return nil, fmt.Errorf("unknown species: %d", species)
	}

	out := evoChainWire{
		Species:        def.Species,
		Generation:     int(gen),
		EvolutionChain: []evoStageWire{},
	}
	chain := e.cats.Evolutions.Chain(def.Species)
	if chain == nil {
		out.EvolutionChain = append(out.EvolutionChain, evoStageWire{
			Species:     def.Species,
			SpeciesName: def.Name,
			Form:        0,
		})
		return out, nil
	}
	for _, st := range chain {
		if st.MinGen > int(gen) {
			continue
		}
		name := ""
		if sd, ok := e.cats.Species.ByID[st.Species]; ok {
			name = sd.Name
		}
		out.EvolutionChain = append(out.EvolutionChain, evoStageWire{
			Species:     st.Species,
			SpeciesName: name,
			Form:        st.Form,
			Method:      st.Method,
			Level:       st.Level,
		})
	}
	return out, nil
}
