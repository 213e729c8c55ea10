package dispatch

import (
	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/engine"
)

// Trainer groups trainer-card, appearance, badge and daycare operations.
type Trainer struct{ c *Client }

func (t Trainer) Card(h engine.Handle) (TrainerCard, error) {
	return decodeCall[TrainerCard](t.c, boundary.OpGetTrainerCard, h, t.c.sur.GetTrainerCard(h))
}

func (t Trainer) Appearance(h engine.Handle) (TrainerAppearance, error) {
	return decodeCall[TrainerAppearance](t.c, boundary.OpGetTrainerAppearance, h, t.c.sur.GetTrainerAppearance(h))
}

func (t Trainer) Badges(h engine.Handle) ([]Badge, error) {
	return decodeCall[[]Badge](t.c, boundary.OpGetBadges, h, t.c.sur.GetBadges(h))
}

func (t Trainer) Daycare(h engine.Handle) (Daycare, error) {
	return decodeCall[Daycare](t.c, boundary.OpGetDaycare, h, t.c.sur.GetDaycare(h))
}

func (t Trainer) SetName(h engine.Handle, name string) error {
	return ackCall(t.c, boundary.OpSetTrainerName, h, t.c.sur.SetTrainerName(h, name))
}

func (t Trainer) SetMoney(h engine.Handle, amount int32) error {
	return ackCall(t.c, boundary.OpSetMoney, h, t.c.sur.SetMoney(h, amount))
}
