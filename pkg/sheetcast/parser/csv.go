package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
)

// DefaultSheetName names the single synthetic sheet produced for
// delimited-text sources, which have no sheet structure of their own.
const DefaultSheetName = "Sheet1"

// ParseCSV interprets data as headerless comma-separated text: the
// first record is ordinary data. Every non-empty field becomes a
// String cell with its text verbatim; no type inference is applied.
// A malformed record aborts the whole conversion.
func ParseCSV(data []byte) (*models.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))

	table := models.NewTable()
	table.Sheets = append(table.Sheets, models.SheetDescriptor{
		Name:  DefaultSheetName,
		Index: 0,
	})

	for row := 1; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsing delimited text: %w", err)
		}
		for i, field := range record {
			if field == "" {
				continue
			}
			col := i + 1
			table.Cells = append(table.Cells, models.Cell{
				Sheet:    DefaultSheetName,
				Address:  models.CellAddress(col, row),
				Row:      row,
				Col:      col,
				DataType: models.TypeString,
				Value:    field,
			})
		}
	}
}
