package dispatch

import (
	"github.com/monokrome/pkhex-go/internal/boundary"
)

// Species answers static reference-data queries; no session handle involved.
type Species struct{ c *Client }

// Forms returns the species' forms for a generation, index-aligned with the
// in-game form ordering.
func (s Species) Forms(speciesID, generation int32) (SpeciesFormSet, error) {
	return decodeCall[SpeciesFormSet](s.c, boundary.OpGetSpeciesForms, -1,
		s.c.sur.GetSpeciesForms(speciesID, generation))
}

// Evolutions returns the evolution chain containing the species, in stage
// order.
func (s Species) Evolutions(speciesID, generation int32) (EvolutionChain, error) {
	return decodeCall[EvolutionChain](s.c, boundary.OpGetSpeciesEvolutions, -1,
		s.c.sur.GetSpeciesEvolutions(speciesID, generation))
}
