package memengine

// saveState is one loaded save session. Fields are exported for the savefile
// codec; the type itself never crosses the boundary — only envelope JSON does.
type saveState struct {
	Trainer    trainerData    `json:"trainer"`
	Appearance appearanceData `json:"appearance"`
	Badges     []bool         `json:"badges"`
	Daycare    []daycareData  `json:"daycare"`
	Pouches    []pouchData    `json:"pouches"`
	// Fashion maps category to unlocked piece count.
	Fashion   map[string]int `json:"fashion"`
	Screws    []screwData    `json:"screws"`
	Royale    [2]int32       `json:"royale"`
	TextSpeed int32          `json:"text_speed"`
}

type trainerData struct {
	Name          string `json:"name"`
	TrainerID     int    `json:"trainer_id"`
	SecretID      int    `json:"secret_id"`
	Gender        int    `json:"gender"`
	Money         int32  `json:"money"`
	PlayedHours   int    `json:"played_hours"`
	PlayedMinutes int    `json:"played_minutes"`
	Game          string `json:"game"`
}

type appearanceData struct {
	SkinTone  int    `json:"skin_tone"`
	HairStyle int    `json:"hair_style"`
	HairColor int    `json:"hair_color"`
	EyeColor  int    `json:"eye_color"`
	Outfit    string `json:"outfit"`
}

type daycareData struct {
	Occupied bool `json:"occupied"`
	Species  int  `json:"species,omitempty"`
	Level    int  `json:"level,omitempty"`
	Steps    int  `json:"steps,omitempty"`
}

type pouchData struct {
	Type  string     `json:"type"`
	Slots int        `json:"slots"`
	Items []itemSlot `json:"items"`
}

type itemSlot struct {
	ID    int32 `json:"id"`
	Count int32 `json:"count"`
}

type screwData struct {
	Zone      string `json:"zone"`
	Collected bool   `json:"collected"`
}

// badgeNames is index-aligned with saveState.Badges.
var badgeNames = []string{
	"Stone Badge",
	"Knuckle Badge",
	"Dynamo Badge",
	"Heat Badge",
	"Balance Badge",
	"Feather Badge",
	"Mind Badge",
	"Rain Badge",
}

// blankSave builds the fresh-game template for the configured layout.
func blankSave(t Tuning) *saveState {
	s := &saveState{
		Trainer: trainerData{
			Name:          "PLAYER",
			TrainerID:     23840,
			SecretID:      51021,
			Gender:        0,
			Money:         3000,
			PlayedHours:   4,
			PlayedMinutes: 52,
			Game:          t.Game,
		},
		Appearance: appearanceData{
			SkinTone:  1,
			HairStyle: 2,
			HairColor: 3,
			EyeColor:  1,
			Outfit:    "default",
		},
		Badges: make([]bool, len(badgeNames)),
		Daycare: []daycareData{
			{Occupied: true, Species: 25, Level: 18, Steps: 640},
			{},
		},
		Fashion:   map[string]int{},
		TextSpeed: 1,
	}
	s.Badges[0] = true
	s.Badges[1] = true

	for _, p := range t.Pouches {
		s.Pouches = append(s.Pouches, pouchData{Type: p.Type, Slots: p.Slots})
	}
	for _, f := range t.Fashion {
		unlocked := 1
		if f.Pieces < unlocked {
			unlocked = f.Pieces
		}
		s.Fashion[f.Category] = unlocked
	}
	for _, z := range t.ScrewZones {
		for i := 0; i < z.Count; i++ {
			s.Screws = append(s.Screws, screwData{Zone: z.Zone})
		}
	}
	return s
}
