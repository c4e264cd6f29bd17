// Package exedit provides cell-level editing of Excel workbooks: a thin
// worksheet abstraction, typed read/write helpers, and file-level
// orchestration for applying batches of edits.
package exedit

import (
	"fmt"
	"os"

	"github.com/ukaji3/exedit-go/pkg/exedit/editor"
	"github.com/ukaji3/exedit-go/pkg/exedit/models"
	"github.com/ukaji3/exedit-go/pkg/exedit/sheet"
	"github.com/xuri/excelize/v2"
)

// Workbook wraps an excelize file and resolves its sheets into editable
// worksheets.
type Workbook struct {
	file *excelize.File
}

// Open loads the workbook at path. A missing file reports ErrFileNotFound.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Workbook{file: f}, nil
}

// NewWorkbook creates an empty workbook with the default sheet.
func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// Sheet resolves an existing sheet by name. A missing sheet reports
// ErrSheetNotFound.
func (wb *Workbook) Sheet(name string) (*sheet.FileSheet, error) {
	idx, err := wb.file.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	return sheet.NewFileSheet(wb.file, name), nil
}

// EnsureSheet resolves a sheet by name, creating it when absent.
func (wb *Workbook) EnsureSheet(name string) (*sheet.FileSheet, error) {
	idx, err := wb.file.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		if _, err := wb.file.NewSheet(name); err != nil {
			return nil, err
		}
	}
	return sheet.NewFileSheet(wb.file, name), nil
}

// Sheets returns the workbook's sheet names in workbook order.
func (wb *Workbook) Sheets() []string {
	return wb.file.GetSheetList()
}

// Save writes the workbook back to the file it was opened from.
func (wb *Workbook) Save() error {
	return wb.file.Save()
}

// SaveAs writes the workbook to path.
func (wb *Workbook) SaveAs(path string) error {
	return wb.file.SaveAs(path)
}

// Close releases the underlying file resources.
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// Edit describes a single cell write within a workbook.
type Edit struct {
	// Sheet is the worksheet name the edit targets. An empty name targets
	// the workbook's first sheet.
	Sheet string
	// Address is the cell reference, e.g. "B4".
	Address string
	// Value is the tagged value to write.
	Value models.CellValue
}

// Apply opens the workbook at path, writes every edit, and saves the result
// to opts.Output, or in place when it is empty. Sheets named by edits are
// created on demand. The first failing edit aborts the batch with an
// *EditError and nothing is saved.
func Apply(path string, edits []Edit, opts Options) error {
	wb, err := Open(path)
	if err != nil {
		return err
	}
	defer wb.Close()

	for _, e := range edits {
		name := e.Sheet
		if name == "" {
			name = wb.Sheets()[0]
		}
		ws, err := wb.EnsureSheet(name)
		if err != nil {
			return NewEditError(name, e.Address, err)
		}
		if err := editor.WriteCell(ws, e.Address, e.Value, opts.ShouldFormat()); err != nil {
			return NewEditError(name, e.Address, err)
		}
	}

	if opts.Output != "" {
		return wb.SaveAs(opts.Output)
	}
	return wb.Save()
}
