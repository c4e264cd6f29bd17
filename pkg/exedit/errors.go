package exedit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates the named sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// EditError represents a failure applying one cell edit.
type EditError struct {
	Sheet   string
	Address string
	Err     error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("edit error in sheet %q (%s): %v", e.Sheet, e.Address, e.Err)
}

func (e *EditError) Unwrap() error {
	return e.Err
}

// NewEditError creates a new EditError.
func NewEditError(sheet, address string, err error) *EditError {
	return &EditError{
		Sheet:   sheet,
		Address: address,
		Err:     err,
	}
}
