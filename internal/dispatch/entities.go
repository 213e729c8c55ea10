package dispatch

// Typed entities decoded from success envelopes. These are read-only
// snapshots: mutating the session after a query does not change a value
// already returned. Field names mirror the wire contract.

type TrainerCard struct {
	TrainerName   string `json:"trainerName"`
	TrainerID     int    `json:"trainerId"`
	SecretID      int    `json:"secretId"`
	Gender        int    `json:"gender"`
	Money         int    `json:"money"`
	PlayedHours   int    `json:"playedHours"`
	PlayedMinutes int    `json:"playedMinutes"`
	Game          string `json:"game"`
	BadgeCount    int    `json:"badgeCount"`
}

type TrainerAppearance struct {
	SkinTone  int    `json:"skinTone"`
	HairStyle int    `json:"hairStyle"`
	HairColor int    `json:"hairColor"`
	EyeColor  int    `json:"eyeColor"`
	Outfit    string `json:"outfit"`
}

type Badge struct {
	BadgeIndex int    `json:"badgeIndex"`
	Name       string `json:"name"`
	Obtained   bool   `json:"obtained"`
}

type Daycare struct {
	Slots        []DaycareSlot `json:"slots"`
	EggAvailable bool          `json:"eggAvailable"`
}

type DaycareSlot struct {
	Slot        int    `json:"slot"`
	Occupied    bool   `json:"occupied"`
	Species     int    `json:"species,omitempty"`
	SpeciesName string `json:"speciesName,omitempty"`
	Level       int    `json:"level,omitempty"`
	Steps       int    `json:"steps,omitempty"`
}

type SpeciesFormSet struct {
	Species     int           `json:"species"`
	SpeciesName string        `json:"speciesName"`
	Generation  int           `json:"generation"`
	Forms       []SpeciesForm `json:"forms"`
}

type SpeciesForm struct {
	FormIndex int       `json:"formIndex"`
	FormName  string    `json:"formName"`
	BaseStats BaseStats `json:"baseStats"`
}

type BaseStats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	SpAtk   int `json:"spAtk"`
	SpDef   int `json:"spDef"`
	Speed   int `json:"speed"`
}

type EvolutionChain struct {
	Species        int              `json:"species"`
	Generation     int              `json:"generation"`
	EvolutionChain []EvolutionStage `json:"evolutionChain"`
}

type EvolutionStage struct {
	Species     int    `json:"species"`
	SpeciesName string `json:"speciesName"`
	Form        int    `json:"form"`
	Method      string `json:"method,omitempty"`
	Level       int    `json:"level,omitempty"`
}

type Pouch struct {
	PouchType  string     `json:"pouchType"`
	PouchIndex int        `json:"pouchIndex"`
	TotalSlots int        `json:"totalSlots"`
	Items      []PouchItem `json:"items"`
}

type PouchItem struct {
	ItemID   int    `json:"itemId"`
	ItemName string `json:"itemName"`
	Count    int    `json:"count"`
}

type ScrewLocation struct {
	LocationIndex int    `json:"locationIndex"`
	Zone          string `json:"zone"`
	Collected     bool   `json:"collected"`
}

type RoyalePoints struct {
	Points1 int `json:"points1"`
	Points2 int `json:"points2"`
}

type FashionUnlock struct {
	Category string `json:"category,omitempty"`
	Unlocked int    `json:"unlocked"`
}
