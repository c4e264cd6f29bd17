package editor

import (
	"fmt"

	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"github.com/ukaji3/exedit-go/pkg/exedit/sheet"
)

// AddMerge registers the rectangle spanned by two cell references in the
// sheet's merge list. The region is appended exactly as given: bounds are
// not reordered and overlaps with existing regions are not checked.
func AddMerge(ws sheet.Worksheet, startAddr, endAddr string) error {
	c1, r1, err := decodeAddr(startAddr)
	if err != nil {
		return fmt.Errorf("invalid merge start %q: %w", startAddr, err)
	}
	c2, r2, err := decodeAddr(endAddr)
	if err != nil {
		return fmt.Errorf("invalid merge end %q: %w", endAddr, err)
	}
	return ws.AppendMerge(models.Region{R1: r1, C1: c1, R2: r2, C2: c2})
}
