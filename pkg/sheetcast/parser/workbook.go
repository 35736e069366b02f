package parser

import (
	"bytes"
	"fmt"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
	"github.com/xuri/excelize/v2"
)

// ParseWorkbook opens data as a multi-sheet workbook container and
// converts every populated cell into the canonical table model. Sheets
// appear in the container's reported order; cells follow sheet-major,
// row-major, column-major order. Any open or per-sheet read failure
// aborts the conversion with no partial table.
func ParseWorkbook(data []byte) (*models.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	table := models.NewTable()
	for idx, sheet := range f.GetSheetList() {
		table.Sheets = append(table.Sheets, models.SheetDescriptor{
			Name:  sheet,
			Index: idx,
		})
		if err := appendSheetCells(f, sheet, date1904, table); err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
	}
	return table, nil
}

// appendSheetCells walks one sheet's rectangular range and appends a
// classified Cell for every non-empty position.
func appendSheetCells(f *excelize.File, sheet string, date1904 bool, table *models.Table) error {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}

	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			colNum := colIdx + 1
			addr := models.CellAddress(colNum, rowNum)

			typ, err := f.GetCellType(sheet, addr)
			if err != nil {
				return err
			}
			cell := rawCell{typ: typ, value: raw, date1904: date1904}
			if typ == excelize.CellTypeNumber || typ == excelize.CellTypeUnset {
				cell.dateStyle, err = hasDateStyle(f, sheet, addr)
				if err != nil {
					return err
				}
			}

			dataType, value, err := classify(cell)
			if err != nil {
				return fmt.Errorf("cell %s: %w", addr, err)
			}
			table.Cells = append(table.Cells, models.Cell{
				Sheet:    sheet,
				Address:  addr,
				Row:      rowNum,
				Col:      colNum,
				DataType: dataType,
				Value:    value,
			})
		}
	}
	return nil
}

// hasDateStyle reports whether a cell's number format renders its
// numeric value as a date or time.
func hasDateStyle(f *excelize.File, sheet, cell string) (bool, error) {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return false, err
	}
	if styleID == 0 {
		return false, nil
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt), nil
	}
	return isBuiltInDateFormat(style.NumFmt), nil
}

// isBuiltInDateFormat reports whether a built-in number format ID is a
// date or time format.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date
// or time tokens, ignoring quoted literals, bracketed sections, and
// escaped characters.
func isDateFormatCode(code string) bool {
	inQuote := false
	for i := 0; i < len(code); i++ {
		switch c := code[i]; {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '\\':
			i++
		case c == '[':
			for i < len(code) && code[i] != ']' {
				i++
			}
		case c == 'y' || c == 'Y', c == 'm' || c == 'M',
			c == 'd' || c == 'D', c == 'h' || c == 'H', c == 's' || c == 'S':
			return true
		}
	}
	return false
}
