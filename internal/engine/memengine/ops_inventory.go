package memengine

import (
	"fmt"

	"github.com/monokrome/pkhex-go/internal/boundary"
)

type pouchWire struct {
	PouchType  string         `json:"pouchType"`
	PouchIndex int            `json:"pouchIndex"`
	TotalSlots int            `json:"totalSlots"`
	Items      []itemSlotWire `json:"items"`
}

type itemSlotWire struct {
	ItemID   int32  `json:"itemId"`
	ItemName string `json:"itemName"`
	Count    int32  `json:"count"`
}

// opGetPouchItems returns every pouch in index order, slots in position
// order. Zero-count slots do not exist in this engine, so the listing is
// exactly what the save holds.
func opGetPouchItems(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpGetPouchItems, args, 1); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	out := make([]pouchWire, len(s.Pouches))
	for i, p := range s.Pouches {
		w := pouchWire{
			PouchType:  p.Type,
			PouchIndex: i,
			TotalSlots: p.Slots,
			Items:      []itemSlotWire{},
		}
		for _, slot := range p.Items {
			name := fmt.Sprintf("item-%d", slot.ID)
			if def, ok := e.cats.Items.ByID[int(slot.ID)]; ok {
				name = def.Name
			}
			w.Items = append(w.Items, itemSlotWire{ItemID: slot.ID, ItemName: name, Count: slot.Count})
		}
		out[i] = w
	}
	return out, nil
}

func opAddItemToPouch(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpAddItemToPouch, args, 4); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	itemID, err := argInt32(args, 1)
	if err != nil {
		return nil, err
	}
	count, err := argInt32(args, 2)
	if err != nil {
		return nil, err
	}
	pouchIndex, err := argInt32(args, 3)
	if err != nil {
		return nil, err
	}

	if count <= 0 {
		return nil, fmt.Errorf("item count must be positive: %d", count)
	}
	if _, ok := e.cats.Items.ByID[int(itemID)]; !ok {
		return nil, fmt.Errorf("unknown item: %d", itemID)
	}
	if pouchIndex < 0 || int(pouchIndex) >= len(s.Pouches) {
		return nil, fmt.Errorf("pouch index out of range: %d", pouchIndex)
	}
	p := &s.Pouches[pouchIndex]

	for i := range p.Items {
		if p.Items[i].ID != itemID {
			continue
		}
		if p.Items[i].Count > e.tun.MaxItemCount-count {
			return nil, fmt.Errorf("count exceeds per-slot limit of %d", e.tun.MaxItemCount)
		}
		p.Items[i].Count += count
		return ackResult{OK: true}, nil
	}

	if count > e.tun.MaxItemCount {
		return nil, fmt.Errorf("count exceeds per-slot limit of %d", e.tun.MaxItemCount)
	}
	if len(p.Items) >= p.Slots {
		return nil, fmt.Errorf("pouch %d is full", pouchIndex)
	}
	p.Items = append(p.Items, itemSlot{ID: itemID, Count: count})
	return ackResult{OK: true}, nil
}

func opRemoveItemFromPouch(e *Engine, args []any) (any, error) {
	if err := argCount(boundary.OpRemoveItemFromPouch, args, 3); err != nil {
		return nil, err
	}
	s, err := e.session(args, 0)
	if err != nil {
		return nil, err
	}
	itemID, err := argInt32(args, 1)
	if err != nil {
		return nil, err
	}
	count, err := argInt32(args, 2)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("item count must be positive: %d", count)
	}

	for pi := range s.Pouches {
		p := &s.Pouches[pi]
		for i := range p.Items {
			if p.Items[i].ID != itemID {
				continue
			}
			if p.Items[i].Count < count {
				return nil, fmt.Errorf("not enough of item %d: have %d, removing %d", itemID, p.Items[i].Count, count)
			}
			p.Items[i].Count -= count
			if p.Items[i].Count == 0 {
				// Close the gap; later slots keep their relative order.
				p.Items = append(p.Items[:i], p.Items[i+1:]...)
			}
			return ackResult{OK: true}, nil
		}
	}
	return nil, fmt.Errorf("item %d not in any pouch", itemID)
}
