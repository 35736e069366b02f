package output

import (
	"strings"
	"testing"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSQL_Layout(t *testing.T) {
	payload, err := ToSQL(fixtureTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(payload, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t,
		"CREATE TABLE cell_data (sheet TEXT, address TEXT, row INTEGER, col INTEGER, data_type TEXT, value TEXT, formula TEXT);",
		lines[0])

	// Values appear in CREATE column order, cells in table order.
	assert.Equal(t,
		"INSERT INTO cell_data VALUES ('Summary','A1',1,1,'String','O''Brien',NULL);",
		lines[1])
	assert.Equal(t,
		"INSERT INTO cell_data VALUES ('Summary','B1',1,2,'Number','3','=SUM(A1:A2)');",
		lines[2])
	assert.Equal(t,
		`INSERT INTO cell_data VALUES ('Data & Notes','AB12',12,28,'String','<tag attr="x">',NULL);`,
		lines[3])
}

func TestToSQL_QuoteDoubling(t *testing.T) {
	table := models.NewTable()
	table.Cells = append(table.Cells, models.Cell{
		Sheet:    "it's",
		Address:  "A1",
		Row:      1,
		Col:      1,
		DataType: models.TypeString,
		Value:    "Robert'); DROP TABLE cell_data;--",
	})

	payload, err := ToSQL(table)
	require.NoError(t, err)

	assert.Contains(t, payload, "'it''s'")
	assert.Contains(t, payload, "'Robert''); DROP TABLE cell_data;--'")
}

func TestToSQL_BackslashesVerbatim(t *testing.T) {
	table := models.NewTable()
	table.Cells = append(table.Cells, models.Cell{
		Sheet:    "Sheet1",
		Address:  "A1",
		Row:      1,
		Col:      1,
		DataType: models.TypeString,
		Value:    `C:\temp\file`,
	})

	payload, err := ToSQL(table)
	require.NoError(t, err)

	// Quote doubling is the only escaping rule; backslashes pass through.
	assert.Contains(t, payload, `'C:\temp\file'`)
}

func TestToSQL_FormulaQuoting(t *testing.T) {
	formula := "=IF(A1='x',1,0)"
	table := models.NewTable()
	table.Cells = append(table.Cells, models.Cell{
		Sheet: "Sheet1", Address: "A1", Row: 1, Col: 1,
		DataType: models.TypeNumber, Value: "1", Formula: &formula,
	})

	payload, err := ToSQL(table)
	require.NoError(t, err)

	assert.Contains(t, payload, "'=IF(A1=''x'',1,0)');")
	assert.NotContains(t, payload, "NULL")
}

func TestToSQL_EmptyTable(t *testing.T) {
	payload, err := ToSQL(models.NewTable())
	require.NoError(t, err)

	assert.Equal(t, createTableStmt, payload)
}
