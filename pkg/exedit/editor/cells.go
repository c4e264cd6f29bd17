// Package editor implements cell-level editing operations over worksheet
// storage: typed reads, range reads, tagged writes, cross-sheet copies, and
// merge registration.
package editor

import (
	"math"

	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"github.com/ukaji3/exedit-go/pkg/exedit/sheet"
)

// Number formats applied by WriteCell to numeric values.
const (
	// FormatWhole is the display format for whole numbers.
	FormatWhole = "0"
	// FormatFixed4 is the display format for fractional numbers.
	FormatFixed4 = "0.0000"
)

// ReadNumber returns the numeric value at addr. Absent cells and records
// whose tag or runtime type is not numeric read as 0; the operation never
// fails.
func ReadNumber(ws sheet.Worksheet, addr string) float64 {
	cell, ok := ws.GetCell(addr)
	if !ok {
		return 0
	}
	v, _ := cell.Number()
	return v
}

// ReadString returns the string value at addr, with "" standing in for
// absent cells and non-string records.
func ReadString(ws sheet.Worksheet, addr string) string {
	cell, ok := ws.GetCell(addr)
	if !ok {
		return ""
	}
	v, _ := cell.Text()
	return v
}

// ReadBool returns the boolean value at addr, with false standing in for
// absent cells and non-boolean records.
func ReadBool(ws sheet.Worksheet, addr string) bool {
	cell, ok := ws.GetCell(addr)
	if !ok {
		return false
	}
	v, _ := cell.Bool()
	return v
}

// WriteCell writes v at addr. Raw values pass through verbatim so prepared
// records keep their own formats; text and bool values produce records of
// their tag; empty values clear the cell while keeping the slot present.
// Numeric values produce a numeric record, and when applyFormat is set the
// display format becomes FormatWhole for whole numbers, while fractional
// values are rounded to DefaultFixedDigits fractional digits and formatted
// with FormatFixed4.
func WriteCell(ws sheet.Worksheet, addr string, v models.CellValue, applyFormat bool) error {
	switch v.Kind {
	case models.KindRaw:
		return ws.SetCell(addr, v.Raw)
	case models.KindText:
		return ws.SetCell(addr, models.StringCell(v.Text))
	case models.KindBool:
		return ws.SetCell(addr, models.BoolCell(v.Bool))
	case models.KindNumber:
		cell := models.NumberCell(v.Number)
		if applyFormat {
			if isWhole(v.Number) {
				cell.Format = FormatWhole
			} else {
				cell.Value = ToFixedFloat(v.Number, DefaultFixedDigits)
				cell.Format = FormatFixed4
			}
		}
		return ws.SetCell(addr, cell)
	default:
		return ws.SetCell(addr, models.EmptyCell())
	}
}

// isWhole reports whether v has no fractional part.
func isWhole(v float64) bool {
	return math.Trunc(v) == v
}

// CopyCell copies the record at srcAddr on src to dstAddr on dst. The record
// travels as one value, format included. When the source cell is absent, an
// explicit empty record is written instead, so the target slot becomes
// present even though the source had none.
func CopyCell(src sheet.Worksheet, srcAddr string, dst sheet.Worksheet, dstAddr string) error {
	cell, ok := src.GetCell(srcAddr)
	if !ok {
		cell = models.EmptyCell()
	}
	return dst.SetCell(dstAddr, cell)
}
