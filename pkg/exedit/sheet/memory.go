package sheet

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"github.com/xuri/excelize/v2"
)

var _ Worksheet = (*MemorySheet)(nil)

// MemorySheet is an in-memory Worksheet backed by an insertion-ordered
// address to record map. It lets the editing helpers run and be tested
// without a workbook file.
type MemorySheet struct {
	cells  *orderedmap.OrderedMap[string, models.Cell]
	merges []models.Region
}

// NewMemorySheet creates an empty in-memory worksheet.
func NewMemorySheet() *MemorySheet {
	return &MemorySheet{
		cells: orderedmap.NewOrderedMap[string, models.Cell](),
	}
}

// canonicalAddr normalizes a cell reference to its canonical form
// ("$a$2" becomes "A2") via the excelize coordinate codec.
func canonicalAddr(addr string) (string, error) {
	trimmed := strings.ToUpper(strings.ReplaceAll(addr, "$", ""))
	col, row, err := excelize.CellNameToCoordinates(trimmed)
	if err != nil {
		return "", err
	}
	return excelize.CoordinatesToCellName(col, row)
}

// GetCell returns the record stored at addr. Unresolvable addresses report
// absence.
func (s *MemorySheet) GetCell(addr string) (models.Cell, bool) {
	key, err := canonicalAddr(addr)
	if err != nil {
		return models.Cell{}, false
	}
	return s.cells.Get(key)
}

// SetCell stores a record at addr.
func (s *MemorySheet) SetCell(addr string, cell models.Cell) error {
	key, err := canonicalAddr(addr)
	if err != nil {
		return fmt.Errorf("set cell %q: %w", addr, err)
	}
	s.cells.Set(key, cell)
	return nil
}

// Merges returns the sheet's merge regions in registration order.
func (s *MemorySheet) Merges() []models.Region {
	return s.merges
}

// AppendMerge appends region to the sheet's merge list.
func (s *MemorySheet) AppendMerge(region models.Region) error {
	s.merges = append(s.merges, region)
	return nil
}

// Addresses returns the canonical addresses of all stored records in
// insertion order.
func (s *MemorySheet) Addresses() []string {
	addrs := make([]string, 0, s.cells.Len())
	for addr := range s.cells.AllFromFront() {
		addrs = append(addrs, addr)
	}
	return addrs
}

// Len returns the number of stored records, including empty ones.
func (s *MemorySheet) Len() int {
	return s.cells.Len()
}

// Clone returns an independent copy of the sheet. Cell records are deep
// copied so mutations on either side stay invisible to the other.
func (s *MemorySheet) Clone() (*MemorySheet, error) {
	out := NewMemorySheet()
	for addr, cell := range s.cells.AllFromFront() {
		var c models.Cell
		if err := deepcopy.Copy(&c, cell); err != nil {
			return nil, fmt.Errorf("clone cell %s: %w", addr, err)
		}
		out.cells.Set(addr, c)
	}
	out.merges = append([]models.Region(nil), s.merges...)
	return out, nil
}
