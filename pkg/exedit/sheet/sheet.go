// Package sheet provides worksheet storage for the editing helpers: an
// in-memory sheet for callers working without a workbook file, and an
// adapter over an excelize worksheet.
package sheet

import "github.com/ukaji3/exedit-go/pkg/exedit/models"

// Worksheet is the cell storage surface the editing helpers operate on.
// Implementations own address resolution and the merge region list; the
// helpers never touch storage directly.
type Worksheet interface {
	// GetCell returns the record stored at addr. ok is false when no
	// record is present or the address cannot be resolved.
	GetCell(addr string) (cell models.Cell, ok bool)
	// SetCell stores a record at addr, replacing any existing record.
	SetCell(addr string, cell models.Cell) error
	// Merges returns the sheet's merge regions in registration order.
	Merges() []models.Region
	// AppendMerge records region in the sheet's merge list. Regions are
	// taken as given: bounds are not reordered and overlaps are not
	// checked here.
	AppendMerge(region models.Region) error
}
