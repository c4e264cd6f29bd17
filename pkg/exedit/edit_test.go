package exedit

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/exedit-go/pkg/exedit/editor"
	"github.com/ukaji3/exedit-go/pkg/exedit/models"
)

// newTestWorkbook saves an empty workbook into a temp directory and returns
// its path.
func newTestWorkbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xlsx")
	wb := NewWorkbook()
	defer wb.Close()
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("failed to create test workbook: %v", err)
	}
	return path
}

func TestApply(t *testing.T) {
	path := newTestWorkbook(t)

	edits := []Edit{
		{Sheet: "Sheet1", Address: "A1", Value: models.NumberValue(5)},
		{Sheet: "Sheet1", Address: "A2", Value: models.NumberValue(5.25)},
		{Address: "B1", Value: models.TextValue("hello")},
		{Sheet: "Data", Address: "A1", Value: models.NumberValue(1)},
	}
	if err := Apply(path, edits, DefaultOptions()); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	wb, err := Open(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer wb.Close()

	ws, err := wb.Sheet("Sheet1")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	if v := editor.ReadNumber(ws, "A1"); v != 5 {
		t.Errorf("A1 = %v, expected 5", v)
	}
	cell, ok := ws.GetCell("A1")
	if !ok || cell.Format != editor.FormatWhole {
		t.Errorf("A1 format = %q, expected %q", cell.Format, editor.FormatWhole)
	}
	cell, ok = ws.GetCell("A2")
	if !ok || cell.Format != editor.FormatFixed4 {
		t.Errorf("A2 format = %q, expected %q", cell.Format, editor.FormatFixed4)
	}
	if v := editor.ReadNumber(ws, "A2"); v != 5.25 {
		t.Errorf("A2 = %v, expected 5.25", v)
	}
	// The sheetless edit lands on the first sheet.
	if v := editor.ReadString(ws, "B1"); v != "hello" {
		t.Errorf("B1 = %q, expected %q", v, "hello")
	}

	// The "Data" sheet was created on demand.
	data, err := wb.Sheet("Data")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	if v := editor.ReadNumber(data, "A1"); v != 1 {
		t.Errorf("Data!A1 = %v, expected 1", v)
	}
}

func TestApplyNoFormat(t *testing.T) {
	path := newTestWorkbook(t)

	noFormat := false
	opts := Options{Format: &noFormat}
	edits := []Edit{
		{Sheet: "Sheet1", Address: "A1", Value: models.NumberValue(5.25)},
	}
	if err := Apply(path, edits, opts); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	wb, err := Open(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer wb.Close()

	ws, err := wb.Sheet("Sheet1")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	cell, ok := ws.GetCell("A1")
	if !ok {
		t.Fatalf("expected cell at A1")
	}
	if v, ok := cell.Number(); !ok || v != 5.25 {
		t.Errorf("A1 value = %v, expected 5.25", cell.Value)
	}
	if cell.Format != "" {
		t.Errorf("A1 format = %q, expected no format", cell.Format)
	}
}

func TestApplyOutputPath(t *testing.T) {
	path := newTestWorkbook(t)
	output := filepath.Join(t.TempDir(), "edited.xlsx")

	edits := []Edit{
		{Sheet: "Sheet1", Address: "A1", Value: models.NumberValue(7)},
	}
	if err := Apply(path, edits, Options{Output: output}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// The edit lands in the output file, not the original.
	edited, err := Open(output)
	if err != nil {
		t.Fatalf("failed to open output workbook: %v", err)
	}
	defer edited.Close()
	ws, err := edited.Sheet("Sheet1")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	if v := editor.ReadNumber(ws, "A1"); v != 7 {
		t.Errorf("output A1 = %v, expected 7", v)
	}

	original, err := Open(path)
	if err != nil {
		t.Fatalf("failed to reopen original workbook: %v", err)
	}
	defer original.Close()
	ows, err := original.Sheet("Sheet1")
	if err != nil {
		t.Fatalf("Sheet failed: %v", err)
	}
	if _, ok := ows.GetCell("A1"); ok {
		t.Errorf("expected the original workbook to stay untouched")
	}
}

func TestApplyInvalidAddress(t *testing.T) {
	path := newTestWorkbook(t)

	edits := []Edit{
		{Sheet: "Sheet1", Address: "not-an-address", Value: models.NumberValue(1)},
	}
	err := Apply(path, edits, DefaultOptions())
	if err == nil {
		t.Fatalf("expected error for invalid address")
	}
	var editErr *EditError
	if !errors.As(err, &editErr) {
		t.Fatalf("expected *EditError, got %T", err)
	}
	if editErr.Sheet != "Sheet1" || editErr.Address != "not-an-address" {
		t.Errorf("EditError = %+v, expected sheet and address to be set", editErr)
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := Open(path)
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestSheetNotFound(t *testing.T) {
	wb := NewWorkbook()
	defer wb.Close()

	_, err := wb.Sheet("Nope")
	if err == nil {
		t.Fatalf("expected error for missing sheet")
	}
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}

	if _, err := wb.EnsureSheet("Nope"); err != nil {
		t.Fatalf("EnsureSheet failed: %v", err)
	}
	if _, err := wb.Sheet("Nope"); err != nil {
		t.Errorf("expected sheet to exist after EnsureSheet: %v", err)
	}

	sheets := wb.Sheets()
	if len(sheets) != 2 {
		t.Errorf("sheet list = %v, expected 2 sheets", sheets)
	}
}
