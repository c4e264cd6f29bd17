package editor

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"github.com/ukaji3/exedit-go/pkg/exedit/sheet"
	"github.com/xuri/excelize/v2"
)

// decodeAddr decodes a single cell reference into 1-based column and row
// coordinates, tolerating absolute markers and lower case.
func decodeAddr(ref string) (col, row int, err error) {
	trimmed := strings.ToUpper(strings.ReplaceAll(ref, "$", ""))
	return excelize.CellNameToCoordinates(trimmed)
}

// ParseRange decodes a range reference such as "A1:B2" into inclusive
// 1-based bounds. A reference without ":" decodes as a single-cell range,
// and reversed bounds are normalized.
func ParseRange(ref string) (models.Region, error) {
	from, to, hasColon := strings.Cut(ref, ":")
	if !hasColon {
		to = from
	}
	c1, r1, err := decodeAddr(from)
	if err != nil {
		return models.Region{}, fmt.Errorf("invalid start of range %q: %w", ref, err)
	}
	c2, r2, err := decodeAddr(to)
	if err != nil {
		return models.Region{}, fmt.Errorf("invalid end of range %q: %w", ref, err)
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	return models.Region{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// FormatRange encodes a region back into a range reference such as "A1:B2",
// collapsing 1x1 regions to a single cell reference.
func FormatRange(region models.Region) (string, error) {
	start, err := excelize.CoordinatesToCellName(region.C1, region.R1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(region.C2, region.R2)
	if err != nil {
		return "", err
	}
	if start == end {
		return start, nil
	}
	return start + ":" + end, nil
}

// ReadNumberRange reads the numeric value of every cell in the given range,
// row-major. Cells that are absent or not numeric leave nil in their slot,
// so the result always has the decoded range's dimensions.
func ReadNumberRange(ws sheet.Worksheet, ref string) ([][]*float64, error) {
	region, err := ParseRange(ref)
	if err != nil {
		return nil, err
	}
	rows := make([][]*float64, 0, region.Rows())
	for r := region.R1; r <= region.R2; r++ {
		row := make([]*float64, 0, region.Cols())
		for c := region.C1; c <= region.C2; c++ {
			addr, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			var slot *float64
			if cell, ok := ws.GetCell(addr); ok {
				if v, ok := cell.Number(); ok {
					slot = &v
				}
			}
			row = append(row, slot)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
