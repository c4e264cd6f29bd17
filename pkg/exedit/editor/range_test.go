package editor

import (
	"testing"

	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"github.com/ukaji3/exedit-go/pkg/exedit/sheet"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected models.Region
		wantErr  bool
	}{
		{ref: "A1:B2", expected: models.Region{R1: 1, C1: 1, R2: 2, C2: 2}},
		{ref: "A1", expected: models.Region{R1: 1, C1: 1, R2: 1, C2: 1}},
		{ref: "B2:A1", expected: models.Region{R1: 1, C1: 1, R2: 2, C2: 2}},
		{ref: "$A$1:$B$2", expected: models.Region{R1: 1, C1: 1, R2: 2, C2: 2}},
		{ref: "a1:b2", expected: models.Region{R1: 1, C1: 1, R2: 2, C2: 2}},
		{ref: "AA10:AB12", expected: models.Region{R1: 10, C1: 27, R2: 12, C2: 28}},
		{ref: "1A:B2", wantErr: true},
		{ref: "A1:", wantErr: true},
		{ref: "", wantErr: true},
		{ref: "A1:B2:C3", wantErr: true},
	}

	for _, tt := range tests {
		region, err := ParseRange(tt.ref)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRange(%q) expected error, got %+v", tt.ref, region)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.ref, err)
			continue
		}
		if region != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.ref, region, tt.expected)
		}
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		region   models.Region
		expected string
	}{
		{models.Region{R1: 1, C1: 1, R2: 2, C2: 2}, "A1:B2"},
		{models.Region{R1: 5, C1: 3, R2: 5, C2: 3}, "C5"},
		{models.Region{R1: 10, C1: 27, R2: 12, C2: 28}, "AA10:AB12"},
	}

	for _, tt := range tests {
		result, err := FormatRange(tt.region)
		if err != nil {
			t.Errorf("FormatRange(%+v) failed: %v", tt.region, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("FormatRange(%+v) = %q, expected %q", tt.region, result, tt.expected)
		}
	}

	if _, err := FormatRange(models.Region{}); err == nil {
		t.Errorf("FormatRange of the zero region expected error, got nil")
	}
}

func TestReadNumberRange(t *testing.T) {
	ws := sheet.NewMemorySheet()
	ws.SetCell("A1", models.NumberCell(1))
	ws.SetCell("B1", models.NumberCell(2))
	ws.SetCell("A2", models.NumberCell(3))
	ws.SetCell("B2", models.NumberCell(4))

	values, err := ReadNumberRange(ws, "A1:B2")
	if err != nil {
		t.Fatalf("ReadNumberRange failed: %v", err)
	}
	expected := [][]float64{{1, 2}, {3, 4}}
	if len(values) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(values))
	}
	for r := range expected {
		if len(values[r]) != len(expected[r]) {
			t.Fatalf("row %d: expected %d columns, got %d", r, len(expected[r]), len(values[r]))
		}
		for c := range expected[r] {
			v := values[r][c]
			if v == nil || *v != expected[r][c] {
				t.Errorf("values[%d][%d] = %v, expected %v", r, c, v, expected[r][c])
			}
		}
	}
}

func TestReadNumberRangeHoles(t *testing.T) {
	ws := sheet.NewMemorySheet()
	ws.SetCell("A1", models.NumberCell(1))
	ws.SetCell("B2", models.StringCell("x"))

	values, err := ReadNumberRange(ws, "A1:C2")
	if err != nil {
		t.Fatalf("ReadNumberRange failed: %v", err)
	}
	if len(values) != 2 || len(values[0]) != 3 || len(values[1]) != 3 {
		t.Fatalf("expected 2x3 result, got %dx%d", len(values), len(values[0]))
	}
	if values[0][0] == nil || *values[0][0] != 1 {
		t.Errorf("values[0][0] = %v, expected 1", values[0][0])
	}
	// Absent cells and the string cell leave nil slots.
	for _, hole := range [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}} {
		if v := values[hole[0]][hole[1]]; v != nil {
			t.Errorf("values[%d][%d] = %v, expected nil", hole[0], hole[1], *v)
		}
	}
}

func TestReadNumberRangeSingleCell(t *testing.T) {
	ws := sheet.NewMemorySheet()
	ws.SetCell("C3", models.NumberCell(7))

	values, err := ReadNumberRange(ws, "C3")
	if err != nil {
		t.Fatalf("ReadNumberRange failed: %v", err)
	}
	if len(values) != 1 || len(values[0]) != 1 {
		t.Fatalf("expected 1x1 result, got %dx%d", len(values), len(values[0]))
	}
	if values[0][0] == nil || *values[0][0] != 7 {
		t.Errorf("values[0][0] = %v, expected 7", values[0][0])
	}
}

func TestReadNumberRangeInvalidRef(t *testing.T) {
	ws := sheet.NewMemorySheet()
	if _, err := ReadNumberRange(ws, "not-a-range"); err == nil {
		t.Errorf("expected error for malformed range reference")
	}
}
