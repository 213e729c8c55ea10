package dispatch

import (
	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/engine"
)

// Inventory groups pouch operations.
type Inventory struct{ c *Client }

// Pouches lists every pouch in index order with slots in position order.
// Zero pouches is a valid result, not an error.
func (i Inventory) Pouches(h engine.Handle) ([]Pouch, error) {
	return decodeCall[[]Pouch](i.c, boundary.OpGetPouchItems, h, i.c.sur.GetPouchItems(h))
}

func (i Inventory) AddItem(h engine.Handle, itemID, count, pouchIndex int32) error {
	return ackCall(i.c, boundary.OpAddItemToPouch, h, i.c.sur.AddItemToPouch(h, itemID, count, pouchIndex))
}

func (i Inventory) RemoveItem(h engine.Handle, itemID, count int32) error {
	return ackCall(i.c, boundary.OpRemoveItemFromPouch, h, i.c.sur.RemoveItemFromPouch(h, itemID, count))
}

// AddItemAndList is the add-then-query convenience composite: two raw calls,
// in that order, against the same handle.
func (i Inventory) AddItemAndList(h engine.Handle, itemID, count, pouchIndex int32) ([]Pouch, error) {
	if err := i.AddItem(h, itemID, count, pouchIndex); err != nil {
		return nil, err
	}
	return i.Pouches(h)
}
