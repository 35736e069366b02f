// Package parser provides the ingestion adapters that build the
// canonical table model from external sources.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
	"github.com/xuri/excelize/v2"
)

// dateTimeLayout is the fixed textual form for native date/time cells.
// The source stores these as epoch-relative serial numbers with no
// inherent display format, so one stable layout is chosen here.
const dateTimeLayout = "2006-01-02T15:04:05"

// rawCell is a tagged raw value as reported by the workbook collaborator.
type rawCell struct {
	typ   excelize.CellType
	value string
	// dateStyle marks a numeric cell carrying a date/time number format.
	dateStyle bool
	// date1904 marks workbooks using the 1904 serial epoch.
	date1904 bool
}

// ClassificationError reports a source value variant outside the
// supported taxonomy. It indicates an adapter bug, not bad user input,
// and always aborts the conversion.
type ClassificationError struct {
	Kind excelize.CellType
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unsupported cell value variant %d", e.Kind)
}

// classify maps a tagged raw value to its cell type and canonical
// textual form. The switch is total over the collaborator's variant
// set; a variant it does not name is a ClassificationError, never a
// silently coerced cell. Empty values must be skipped by the caller
// and never reach classify.
func classify(c rawCell) (models.CellType, string, error) {
	switch c.typ {
	case excelize.CellTypeBool:
		if c.value == "0" {
			return models.TypeBoolean, "false", nil
		}
		return models.TypeBoolean, "true", nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// Untyped cells are numeric in the container format.
		f, err := strconv.ParseFloat(c.value, 64)
		if err != nil {
			return "", "", fmt.Errorf("numeric cell value %q: %w", c.value, err)
		}
		if c.dateStyle {
			t, err := excelize.ExcelDateToTime(f, c.date1904)
			if err != nil {
				return "", "", fmt.Errorf("date serial %q: %w", c.value, err)
			}
			return models.TypeDateTime, t.Format(dateTimeLayout), nil
		}
		return models.TypeNumber, strconv.FormatFloat(f, 'f', -1, 64), nil
	case excelize.CellTypeError:
		return models.TypeError, c.value, nil
	case excelize.CellTypeDate:
		// ISO cells hold either a date/time or a duration; durations
		// are distinguished by the leading period designator.
		if strings.HasPrefix(strings.TrimPrefix(c.value, "-"), "P") {
			return models.TypeDurationIso, c.value, nil
		}
		return models.TypeDateTimeIso, c.value, nil
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return models.TypeString, c.value, nil
	case excelize.CellTypeFormula:
		// The cached result text of a formula cell, kept verbatim.
		return models.TypeString, c.value, nil
	}
	return "", "", &ClassificationError{Kind: c.typ}
}
