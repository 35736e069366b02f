package output

import (
	"fmt"
	"strings"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
)

// createTableStmt declares the target table. Every INSERT below lists
// its values in exactly this column order.
const createTableStmt = "CREATE TABLE cell_data (sheet TEXT, address TEXT, row INTEGER, col INTEGER, data_type TEXT, value TEXT, formula TEXT);\n"

// ToSQL renders the table as a CREATE TABLE declaration followed by
// one INSERT statement per cell, in cells order. The emitted text is
// never executed here; escaping only has to keep each statement
// syntactically valid for arbitrary cell content.
func ToSQL(t *models.Table) (string, error) {
	var b strings.Builder
	b.WriteString(createTableStmt)
	for _, c := range t.Cells {
		formula := "NULL"
		if c.Formula != nil {
			formula = quote(*c.Formula)
		}
		fmt.Fprintf(&b, "INSERT INTO cell_data VALUES (%s,%s,%d,%d,%s,%s,%s);\n",
			quote(c.Sheet), quote(c.Address), c.Row, c.Col,
			quote(string(c.DataType)), quote(c.Value), formula)
	}
	return b.String(), nil
}

// quote wraps s in single quotes, doubling embedded quote characters.
// Under standard SQL string literal rules no other character needs
// escaping.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
