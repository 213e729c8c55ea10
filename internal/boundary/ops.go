// Package boundary is the flat raw call surface of the save engine: one
// typed pass-through function per operation, all returning the engine's JSON
// envelope string untouched. The Ops table is the single declarative source
// for operation names, argument shapes and result schemas; transport routing
// and test enumeration are driven from it rather than hand-written per op.
package boundary

// Operation names as the engine knows them.
const (
	OpLoadSave    = "LoadSave"
	OpReleaseSave = "ReleaseSave"
	OpExportSave  = "ExportSave"

	OpGetTrainerCard       = "GetTrainerCard"
	OpGetTrainerAppearance = "GetTrainerAppearance"
	OpGetBadges            = "GetBadges"
	OpGetDaycare           = "GetDaycare"
	OpSetTrainerName       = "SetTrainerName"
	OpSetMoney             = "SetMoney"

	OpGetSpeciesForms      = "GetSpeciesForms"
	OpGetSpeciesEvolutions = "GetSpeciesEvolutions"

	OpGetPouchItems       = "GetPouchItems"
	OpAddItemToPouch      = "AddItemToPouch"
	OpRemoveItemFromPouch = "RemoveItemFromPouch"

	OpCollectColorfulScrews     = "CollectColorfulScrews"
	OpGetColorfulScrewLocations = "GetColorfulScrewLocations"
	OpGetInfiniteRoyalePoints   = "GetInfiniteRoyalePoints"
	OpSetInfiniteRoyalePoints   = "SetInfiniteRoyalePoints"

	OpGetTextSpeed = "GetTextSpeed"
	OpSetTextSpeed = "SetTextSpeed"

	OpUnlockFashionCategory = "UnlockFashionCategory"
	OpUnlockAllFashion      = "UnlockAllFashion"
	OpUnlockAllHairMakeup   = "UnlockAllHairMakeup"
)

// ArgKind is the structural type of one positional argument. Typing here is
// structural only; semantic validation belongs to the engine.
type ArgKind int

const (
	ArgHandle ArgKind = iota + 1
	ArgInt
	ArgString
	ArgBool
)

// OpSpec describes one operation of the raw surface.
type OpSpec struct {
	Name   string
	Domain string
	Args   []ArgKind
	// Result names the success-shape schema (see envelope.SchemaFor).
	Result string
	// Mutates marks operations that change session state.
	Mutates bool
}

// Ops enumerates the whole surface in a stable order.
var Ops = []OpSpec{
	{Name: OpLoadSave, Domain: "saves", Args: []ArgKind{ArgString}, Result: "handle", Mutates: true},
	{Name: OpReleaseSave, Domain: "saves", Args: []ArgKind{ArgHandle}, Result: "ack", Mutates: true},
	{Name: OpExportSave, Domain: "saves", Args: []ArgKind{ArgHandle, ArgString}, Result: "ack"},

	{Name: OpGetTrainerCard, Domain: "trainer", Args: []ArgKind{ArgHandle}, Result: "trainer_card"},
	{Name: OpGetTrainerAppearance, Domain: "trainer", Args: []ArgKind{ArgHandle}, Result: "trainer_appearance"},
	{Name: OpGetBadges, Domain: "trainer", Args: []ArgKind{ArgHandle}, Result: "badge_list"},
	{Name: OpGetDaycare, Domain: "trainer", Args: []ArgKind{ArgHandle}, Result: "daycare"},
	{Name: OpSetTrainerName, Domain: "trainer", Args: []ArgKind{ArgHandle, ArgString}, Result: "ack", Mutates: true},
	{Name: OpSetMoney, Domain: "trainer", Args: []ArgKind{ArgHandle, ArgInt}, Result: "ack", Mutates: true},

	{Name: OpGetSpeciesForms, Domain: "species", Args: []ArgKind{ArgInt, ArgInt}, Result: "species_form_set"},
	{Name: OpGetSpeciesEvolutions, Domain: "species", Args: []ArgKind{ArgInt, ArgInt}, Result: "evolution_chain"},

	{Name: OpGetPouchItems, Domain: "inventory", Args: []ArgKind{ArgHandle}, Result: "pouch_list"},
	{Name: OpAddItemToPouch, Domain: "inventory", Args: []ArgKind{ArgHandle, ArgInt, ArgInt, ArgInt}, Result: "ack", Mutates: true},
	{Name: OpRemoveItemFromPouch, Domain: "inventory", Args: []ArgKind{ArgHandle, ArgInt, ArgInt}, Result: "ack", Mutates: true},

	{Name: OpCollectColorfulScrews, Domain: "minigames", Args: []ArgKind{ArgHandle}, Result: "collect_result", Mutates: true},
	{Name: OpGetColorfulScrewLocations, Domain: "minigames", Args: []ArgKind{ArgHandle, ArgBool}, Result: "screw_location_list"},
	{Name: OpGetInfiniteRoyalePoints, Domain: "minigames", Args: []ArgKind{ArgHandle}, Result: "royale_points"},
	{Name: OpSetInfiniteRoyalePoints, Domain: "minigames", Args: []ArgKind{ArgHandle, ArgInt, ArgInt}, Result: "royale_points", Mutates: true},

	{Name: OpGetTextSpeed, Domain: "config", Args: []ArgKind{ArgHandle}, Result: "text_speed"},
	{Name: OpSetTextSpeed, Domain: "config", Args: []ArgKind{ArgHandle, ArgInt}, Result: "text_speed", Mutates: true},

	{Name: OpUnlockFashionCategory, Domain: "fashion", Args: []ArgKind{ArgHandle, ArgString}, Result: "fashion_unlock", Mutates: true},
	{Name: OpUnlockAllFashion, Domain: "fashion", Args: []ArgKind{ArgHandle}, Result: "fashion_unlock", Mutates: true},
	{Name: OpUnlockAllHairMakeup, Domain: "fashion", Args: []ArgKind{ArgHandle}, Result: "fashion_unlock", Mutates: true},
}

var opsByName = func() map[string]OpSpec {
	m := make(map[string]OpSpec, len(Ops))
	for _, op := range Ops {
		m[op.Name] = op
	}
	return m
}()

// Lookup resolves an operation by name.
func Lookup(name string) (OpSpec, bool) {
	op, ok := opsByName[name]
	return op, ok
}
