package memengine

import (
	"fmt"

	"github.com/monokrome/pkhex-go/internal/boundary"
)

type trainerCardWire struct {
	TrainerName   string `json:"trainerName"`
	TrainerID     int    `json:"trainerId"`
	SecretID      int    `json:"secretId"`
	Gender        int    `json:"gender"`
	Money         int32  `json:"money"`
	PlayedHours   int    `json:"playedHours"`
	PlayedMinutes int    `json:"playedMinutes"`
	Game          string `json:"game"`
	BadgeCount    int    `json:"badgeCount"`
}

type appearanceWire struct {
	SkinTone  int    `json:"skinTone"`
	HairStyle int    `json:"hairStyle"`
	HairColor int    `json:"hairColor"`
	EyeColor  int    `json:"eyeColor"`
	Outfit    string `json:"outfit"`
}

type badgeWire struct {
	BadgeIndex int    `json:"badgeIndex"`
	Name       string `json:"name"`
	Obtained   bool   `json:"obtained"`
}

type daycareWire struct {
	Slots        []daycareSlotWire `json:"slots"`
	EggAvailable bool              `json:"eggAvailable"`
}

type daycareSlotWire struct {
	Slot        int    `json:"slot"`
	Occupied    bool   `json:"occupied"`
	Species     int    `json:"species,omitempty"`
	SpeciesName string `json:"speciesName,omitempty"`
	Level       int    `json:"level,omitempty"`
	Steps       int    `json:"steps,omitempty"`
}

const maxTrainerNameLen = 12

func opGetTrainerCard(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetTrainerCard, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	badges := 0
	for _, b := range s.Badges {
		if b {
			badges++
		}
	}
	return trainerCardWire{
		TrainerName:   s.Trainer.Name,
		TrainerID:     s.Trainer.TrainerID,
		SecretID:      s.Trainer.SecretID,
		Gender:        s.Trainer.Gender,
		Money:         s.Trainer.Money,
		PlayedHours:   s.Trainer.PlayedHours,
		PlayedMinutes: s.Trainer.PlayedMinutes,
		Game:          s.Trainer.Game,
		BadgeCount:    badges,
	}, nil
}

func opGetTrainerAppearance(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetTrainerAppearance, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	return appearanceWire{
		SkinTone:  s.Appearance.SkinTone,
		HairStyle: s.Appearance.HairStyle,
		HairColor: s.Appearance.HairColor,
		EyeColor:  s.Appearance.EyeColor,
		Outfit:    s.Appearance.Outfit,
	}, nil
}

func opGetBadges(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetBadges, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	out := make([]badgeWire, len(s.Badges))
	for i, obtained := range s.Badges {
		name := ""
		if i < len(badgeNames) {
			name = badgeNames[i]
		}
		out[i] = badgeWire{BadgeIndex: i, Name: name, Obtained: obtained}
	}
	return out, nil
}

func opGetDaycare(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetDaycare, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	out := daycareWire{Slots: make([]daycareSlotWire, len(s.Daycare))}
	occupied := 0
	for i, d := range s.Daycare {
		slot := daycareSlotWire{Slot: i, Occupied: d.Occupied}
		if d.Occupied {
			occupied++
			slot.Species = d.Species
			slot.Level = d.Level
			slot.Steps = d.Steps
			if def, ok := e.cats.Species.ByID[d.Species]; ok {
				slot.SpeciesName = def.Name
			}
		}
		out.Slots[i] = slot
	}
	out.EggAvailable = occupied == len(s.Daycare) && len(s.Daycare) > 0
	return out, nil
}

func opSetTrainerName(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpSetTrainerName, args, 2); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	name, err := argString(args, 1)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("trainer name must not be empty")
	}
	if len([]rune(name)) > maxTrainerNameLen {
		return nil, fmt.Errorf("trainer name too long: %d characters", len([]rune(name)))
	}
	s.Trainer.Name = name
	return ackResult{OK: true}, nil
}

func opSetMoney(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpSetMoney, args, 2); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	amount, err := argInt32(args, 1)
	if err != nil {
		return nil, err
	}
	if amount < 0 || amount > 999999 {
		return nil, fmt.Errorf("money out of range: %d", amount)
	}
	s.Trainer.Money = amount
	return ackResult{OK: true}, nil
}
