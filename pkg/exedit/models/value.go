package models

// ValueKind discriminates the shapes a cell write value can take.
type ValueKind string

const (
	// KindNumber writes a numeric record.
	KindNumber ValueKind = "number"
	// KindText writes a text record.
	KindText ValueKind = "text"
	// KindBool writes a boolean record.
	KindBool ValueKind = "bool"
	// KindRaw writes a caller-built record verbatim.
	KindRaw ValueKind = "raw"
	// KindEmpty writes an empty record, clearing the cell.
	KindEmpty ValueKind = "empty"
)

// CellValue is the tagged value accepted by the cell writer. The zero value
// behaves as KindEmpty.
type CellValue struct {
	// Kind selects which payload field is meaningful.
	Kind ValueKind
	// Number is the payload for KindNumber.
	Number float64
	// Text is the payload for KindText.
	Text string
	// Bool is the payload for KindBool.
	Bool bool
	// Raw is the payload for KindRaw.
	Raw Cell
}

// NumberValue returns a numeric write value.
func NumberValue(v float64) CellValue {
	return CellValue{Kind: KindNumber, Number: v}
}

// TextValue returns a text write value.
func TextValue(s string) CellValue {
	return CellValue{Kind: KindText, Text: s}
}

// BoolValue returns a boolean write value.
func BoolValue(v bool) CellValue {
	return CellValue{Kind: KindBool, Bool: v}
}

// RawValue returns a pass-through write value carrying a prepared record,
// keeping the record's own value and format untouched.
func RawValue(c Cell) CellValue {
	return CellValue{Kind: KindRaw, Raw: c}
}

// EmptyValue returns a write value that clears the target cell.
func EmptyValue() CellValue {
	return CellValue{Kind: KindEmpty}
}
