// Package models defines data structures for worksheet editing.
package models

// CellType tags the kind of value a cell record holds.
type CellType string

const (
	// TypeNumber marks a numeric cell (Value holds a float64).
	TypeNumber CellType = "number"
	// TypeString marks a text cell (Value holds a string).
	TypeString CellType = "string"
	// TypeBool marks a boolean cell (Value holds a bool).
	TypeBool CellType = "bool"
	// TypeEmpty marks a cell record with no value.
	TypeEmpty CellType = "empty"
)

// Cell represents the tagged value and display format stored at one address.
type Cell struct {
	// Type is the value tag. Tags outside the Type* constants behave as
	// unset: the typed accessors report no value.
	Type CellType `json:"type"`
	// Value is the raw cell value. Its runtime type must match Type for the
	// typed accessors to return it.
	Value any `json:"value,omitempty"`
	// Format is the display number format (e.g. "0" or "0.0000"), if any.
	Format string `json:"format,omitempty"`
}

// NumberCell returns a numeric cell record.
func NumberCell(v float64) Cell {
	return Cell{Type: TypeNumber, Value: v}
}

// StringCell returns a text cell record.
func StringCell(v string) Cell {
	return Cell{Type: TypeString, Value: v}
}

// BoolCell returns a boolean cell record.
func BoolCell(v bool) Cell {
	return Cell{Type: TypeBool, Value: v}
}

// EmptyCell returns a cell record with no value. Writing it clears a cell
// while keeping the slot present.
func EmptyCell() Cell {
	return Cell{Type: TypeEmpty}
}

// Number returns the cell's numeric value. ok is false when the tag is not
// TypeNumber or the value does not hold a float64.
func (c Cell) Number() (float64, bool) {
	if c.Type != TypeNumber {
		return 0, false
	}
	v, ok := c.Value.(float64)
	return v, ok
}

// Text returns the cell's string value. ok is false when the tag is not
// TypeString or the value does not hold a string.
func (c Cell) Text() (string, bool) {
	if c.Type != TypeString {
		return "", false
	}
	v, ok := c.Value.(string)
	return v, ok
}

// Bool returns the cell's boolean value. ok is false when the tag is not
// TypeBool or the value does not hold a bool.
func (c Cell) Bool() (bool, bool) {
	if c.Type != TypeBool {
		return false, false
	}
	v, ok := c.Value.(bool)
	return v, ok
}
