// Package models defines the canonical table model shared by all
// ingestion adapters and output serializers.
package models

import "encoding/xml"

// CellType classifies the value carried by a Cell. The set is closed:
// every raw value a source produces maps to exactly one of these.
type CellType string

const (
	// TypeString is plain text.
	TypeString CellType = "String"
	// TypeNumber covers both integral and floating values.
	TypeNumber CellType = "Number"
	// TypeBoolean renders as "true" or "false".
	TypeBoolean CellType = "Boolean"
	// TypeError is a spreadsheet error value such as "#DIV/0!".
	TypeError CellType = "Error"
	// TypeDateTime is a native date/time value rendered in a fixed layout.
	TypeDateTime CellType = "DateTime"
	// TypeDateTimeIso is an ISO-8601 date/time string passed through verbatim.
	TypeDateTimeIso CellType = "DateTimeIso"
	// TypeDurationIso is an ISO-8601 duration string passed through verbatim.
	TypeDurationIso CellType = "DurationIso"
)

// SheetDescriptor identifies one sheet of the source workbook.
type SheetDescriptor struct {
	// Name is the sheet name, unique within a Table.
	Name string `json:"name" yaml:"name" xml:"name"`
	// Index is the 0-based position in source discovery order.
	Index int `json:"index" yaml:"index" xml:"index"`
	// Hidden reports sheet visibility. No current adapter sets it.
	Hidden bool `json:"hidden" yaml:"hidden" xml:"hidden"`
}

// Cell is a single populated position. Empty source positions never
// produce a Cell.
type Cell struct {
	// Sheet is the owning sheet name.
	Sheet string `json:"sheet" yaml:"sheet" xml:"sheet"`
	// Address is the spreadsheet coordinate, always CellAddress(Col, Row).
	Address string `json:"address" yaml:"address" xml:"address"`
	// Row is the 1-based row index.
	Row int `json:"row" yaml:"row" xml:"row"`
	// Col is the 1-based column index.
	Col int `json:"col" yaml:"col" xml:"col"`
	// DataType is the classified type of Value.
	DataType CellType `json:"data_type" yaml:"data_type" xml:"data_type"`
	// Value is the canonical textual form of the source datum.
	Value string `json:"value" yaml:"value" xml:"value"`
	// Formula is the source formula expression when one is exposed
	// separately from the computed value.
	Formula *string `json:"formula,omitempty" yaml:"formula,omitempty" xml:"formula,omitempty"`
}

// MergedRange describes a merged cell region by its corner addresses.
type MergedRange struct {
	// Sheet is the owning sheet name.
	Sheet string `json:"sheet" yaml:"sheet" xml:"sheet"`
	// Start is the top-left address of the range.
	Start string `json:"start" yaml:"start" xml:"start"`
	// End is the bottom-right address of the range.
	End string `json:"end" yaml:"end" xml:"end"`
}

// Table is the aggregate every adapter produces and every serializer
// consumes. Cells are ordered sheet-major, then row-major, then
// column-major; that ordering is part of the output contract.
type Table struct {
	XMLName xml.Name `json:"-" yaml:"-" xml:"table"`
	// Sheets lists sheet descriptors in discovery order.
	Sheets []SheetDescriptor `json:"sheets" yaml:"sheets" xml:"sheets>sheet"`
	// Cells lists every populated cell in discovery order.
	Cells []Cell `json:"cells" yaml:"cells" xml:"cells>cell"`
	// MergedRanges lists merged regions for sources that expose them.
	MergedRanges []MergedRange `json:"merged_ranges" yaml:"merged_ranges" xml:"merged_ranges>merged_range"`
}

// NewTable returns an empty Table. Slices are non-nil so that absent
// sections serialize as empty sequences rather than null.
func NewTable() *Table {
	return &Table{
		Sheets:       []SheetDescriptor{},
		Cells:        []Cell{},
		MergedRanges: []MergedRange{},
	}
}
