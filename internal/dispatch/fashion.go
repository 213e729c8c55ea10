package dispatch

import (
	"github.com/monokrome/pkhex-go/internal/boundary"
	"github.com/monokrome/pkhex-go/internal/engine"
)

// Fashion groups wardrobe unlock operations. The valid category set is
// engine-owned and may grow; nothing is pre-validated here.
type Fashion struct{ c *Client }

func (f Fashion) UnlockCategory(h engine.Handle, category string) (FashionUnlock, error) {
	return decodeCall[FashionUnlock](f.c, boundary.OpUnlockFashionCategory, h,
		f.c.sur.UnlockFashionCategory(h, category))
}

func (f Fashion) UnlockAll(h engine.Handle) (FashionUnlock, error) {
	return decodeCall[FashionUnlock](f.c, boundary.OpUnlockAllFashion, h,
		f.c.sur.UnlockAllFashion(h))
}

func (f Fashion) UnlockAllHairMakeup(h engine.Handle) (FashionUnlock, error) {
	return decodeCall[FashionUnlock](f.c, boundary.OpUnlockAllHairMakeup, h,
		f.c.sur.UnlockAllHairMakeup(h))
}
