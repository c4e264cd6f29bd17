package sheet

import (
	"strconv"

	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"github.com/xuri/excelize/v2"
)

var _ Worksheet = (*FileSheet)(nil)

// builtinNumFmts maps the common built-in number format ids a workbook can
// report back to their format codes. Custom formats are read directly.
var builtinNumFmts = map[int]string{
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	14: "m/d/yy",
}

// FileSheet adapts one sheet of an excelize workbook to the Worksheet
// interface. Writes go straight to the workbook; saving is the caller's
// concern.
type FileSheet struct {
	file   *excelize.File
	name   string
	styles map[string]int // number format to style id
}

// NewFileSheet wraps the named sheet of f. The sheet is expected to exist;
// the exedit package's Workbook resolves and creates sheets.
func NewFileSheet(f *excelize.File, name string) *FileSheet {
	return &FileSheet{
		file:   f,
		name:   name,
		styles: make(map[string]int),
	}
}

// Name returns the sheet name within the workbook.
func (s *FileSheet) Name() string {
	return s.name
}

// GetCell reads the record at addr. Blank cells and unresolvable addresses
// report absence; the file model keeps no distinct "present but empty"
// state, so explicitly cleared cells read back as absent too.
func (s *FileSheet) GetCell(addr string) (models.Cell, bool) {
	raw, err := s.file.GetCellValue(s.name, addr, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Cell{}, false
	}
	ct, err := s.file.GetCellType(s.name, addr)
	if err != nil {
		return models.Cell{}, false
	}
	if raw == "" && ct == excelize.CellTypeUnset {
		return models.Cell{}, false
	}

	cell := models.Cell{Format: s.cellFormat(addr)}
	switch ct {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		cell.Type = models.TypeString
		cell.Value = raw
	case excelize.CellTypeFormula:
		// Covers t="str" cells: strings set in memory before a save and
		// cached string results of formulas.
		cell.Type = models.TypeString
		cell.Value = raw
	case excelize.CellTypeBool:
		cell.Type = models.TypeBool
		cell.Value = raw == "1"
	case excelize.CellTypeError:
		cell.Type = models.TypeString
		cell.Value = raw
	default:
		// Number, date, and untyped cells carry numeric text.
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			cell.Type = models.TypeNumber
			cell.Value = v
		} else {
			cell.Type = models.TypeString
			cell.Value = raw
		}
	}
	return cell, true
}

// cellFormat reads the number format applied at addr, if one resolves.
func (s *FileSheet) cellFormat(addr string) string {
	styleID, err := s.file.GetCellStyle(s.name, addr)
	if err != nil || styleID == 0 {
		return ""
	}
	style, err := s.file.GetStyle(styleID)
	if err != nil || style == nil {
		return ""
	}
	if style.CustomNumFmt != nil {
		return *style.CustomNumFmt
	}
	if code, ok := builtinNumFmts[style.NumFmt]; ok {
		return code
	}
	return ""
}

// SetCell writes a record at addr, dispatching on the tag to the matching
// workbook setter and applying the record's number format.
func (s *FileSheet) SetCell(addr string, cell models.Cell) error {
	var err error
	switch cell.Type {
	case models.TypeNumber:
		err = s.file.SetCellValue(s.name, addr, cell.Value)
	case models.TypeString:
		v, _ := cell.Text()
		err = s.file.SetCellStr(s.name, addr, v)
	case models.TypeBool:
		v, _ := cell.Bool()
		err = s.file.SetCellBool(s.name, addr, v)
	default:
		err = s.file.SetCellValue(s.name, addr, nil)
	}
	if err != nil {
		return err
	}
	if cell.Format == "" {
		return nil
	}
	return s.applyFormat(addr, cell.Format)
}

// applyFormat applies a number format to addr through the workbook style
// table, reusing one style id per format code.
func (s *FileSheet) applyFormat(addr, format string) error {
	styleID, ok := s.styles[format]
	if !ok {
		var err error
		styleID, err = s.file.NewStyle(&excelize.Style{CustomNumFmt: &format})
		if err != nil {
			return err
		}
		s.styles[format] = styleID
	}
	return s.file.SetCellStyle(s.name, addr, addr, styleID)
}

// Merges returns the sheet's merge regions as reported by the workbook.
func (s *FileSheet) Merges() []models.Region {
	mcs, err := s.file.GetMergeCells(s.name)
	if err != nil {
		return nil
	}
	regions := make([]models.Region, 0, len(mcs))
	for _, mc := range mcs {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		regions = append(regions, models.Region{R1: r1, C1: c1, R2: r2, C2: c2})
	}
	return regions
}

// AppendMerge merges the region's cells. The workbook library applies its
// own normalization and overlap handling on top of the raw region.
func (s *FileSheet) AppendMerge(region models.Region) error {
	start, err := excelize.CoordinatesToCellName(region.C1, region.R1)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(region.C2, region.R2)
	if err != nil {
		return err
	}
	return s.file.MergeCell(s.name, start, end)
}
