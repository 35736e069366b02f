package models

import (
	"fmt"
	"strconv"
)

// ColumnName converts a 1-based column index to its spreadsheet letter
// form using bijective base-26: 1→"A", 26→"Z", 27→"AA", 703→"AAA".
// A non-positive index is a caller bug, not a recoverable condition.
func ColumnName(col int) string {
	if col < 1 {
		panic(fmt.Sprintf("models: column index %d out of range", col))
	}
	var buf [16]byte
	i := len(buf)
	for col > 0 {
		i--
		buf[i] = byte('A' + (col-1)%26)
		col = (col - 1) / 26
	}
	return string(buf[i:])
}

// ColumnNumber is the inverse of ColumnName. It accepts only uppercase
// letters and returns the 1-based column index.
func ColumnNumber(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("models: empty column name")
	}
	col := 0
	for _, r := range name {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("models: invalid column name %q", name)
		}
		col = col*26 + int(r-'A') + 1
	}
	return col, nil
}

// CellAddress returns the spreadsheet coordinate for a 1-based
// (column, row) pair, e.g. CellAddress(28, 1) == "AB1".
func CellAddress(col, row int) string {
	return ColumnName(col) + strconv.Itoa(row)
}
