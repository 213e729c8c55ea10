// savectl runs one-shot operations against a save file from the command
// line: dump trainer data, edit the inventory, export a copy.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/monokrome/pkhex-go/internal/catalog"
	"github.com/monokrome/pkhex-go/internal/dispatch"
	"github.com/monokrome/pkhex-go/internal/engine"
	"github.com/monokrome/pkhex-go/internal/engine/memengine"
	"github.com/monokrome/pkhex-go/internal/session"
)

func main() {
	var (
		savePath   = flag.String("save", "", "save file path (empty: blank save)")
		savesDir   = flag.String("saves", "", "directory save paths resolve under (empty: paths used as-is)")
		catalogDir = flag.String("catalogs", "", "catalog directory (empty: embedded defaults)")
		tuningPath = flag.String("tuning", "", "path to tuning.yaml (empty: built-in defaults)")

		itemID = flag.Int("item", 0, "item id for add/remove")
		count  = flag.Int("count", 1, "item count for add/remove")
		pouch  = flag.Int("pouch", 0, "pouch index for add")
		out    = flag.String("out", "", "output path for export")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[savectl] ", log.LstdFlags)

	if flag.NArg() != 1 {
		logger.Fatalf("usage: savectl [flags] card|appearance|badges|daycare|pouches|add|remove|screws|export")
	}
	cmd := flag.Arg(0)

	var cats *catalog.Catalogs
	var err error
	if *catalogDir == "" {
		cats, err = catalog.Default()
	} else {
		cats, err = catalog.Load(*catalogDir)
	}
	if err != nil {
		logger.Fatalf("load catalogs: %v", err)
	}
	tun := memengine.DefaultTuning()
	if *tuningPath != "" {
		tun, err = memengine.LoadTuning(*tuningPath)
		if err != nil {
			logger.Fatalf("load tuning: %v", err)
		}
	}

	var opts []memengine.Option
	if *savesDir != "" {
		opts = append(opts, memengine.WithSavesDir(*savesDir))
	}
	eng := memengine.New(cats, tun, opts...)

	err = session.With(eng, *savePath, func(c *dispatch.Client, h engine.Handle) error {
		switch cmd {
		case "card":
			v, err := c.Trainer().Card(h)
			return dump(v, err)
		case "appearance":
			v, err := c.Trainer().Appearance(h)
			return dump(v, err)
		case "badges":
			v, err := c.Trainer().Badges(h)
			return dump(v, err)
		case "daycare":
			v, err := c.Trainer().Daycare(h)
			return dump(v, err)
		case "pouches":
			v, err := c.Inventory().Pouches(h)
			return dump(v, err)
		case "add":
			v, err := c.Inventory().AddItemAndList(h, int32(*itemID), int32(*count), int32(*pouch))
			return dump(v, err)
		case "remove":
			if err := c.Inventory().RemoveItem(h, int32(*itemID), int32(*count)); err != nil {
				return err
			}
			v, err := c.Inventory().Pouches(h)
			return dump(v, err)
		case "screws":
			v, err := c.MiniGames().ScrewLocations(h, true)
			return dump(v, err)
		case "export":
			if *out == "" {
				return fmt.Errorf("export requires -out")
			}
			return c.Saves().Export(h, *out)
		default:
			return fmt.Errorf("unknown command: %s", cmd)
		}
	})
	if err != nil {
		logger.Fatalf("%s: %v", cmd, err)
	}
}

func dump(v any, err error) error {
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
