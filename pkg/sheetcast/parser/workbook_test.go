package parser

import (
	"testing"
	"time"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook serializes an excelize file into an in-memory container.
func buildWorkbook(t *testing.T, f *excelize.File) []byte {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func TestParseWorkbook_Basic(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Header"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", 100))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 200.5))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", true))

	table, err := ParseWorkbook(buildWorkbook(t, f))
	require.NoError(t, err)

	require.Len(t, table.Sheets, 1)
	assert.Equal(t, "Sheet1", table.Sheets[0].Name)
	assert.Equal(t, 0, table.Sheets[0].Index)
	assert.False(t, table.Sheets[0].Hidden)

	require.Len(t, table.Cells, 4)
	wantAddr := []string{"A1", "B1", "A2", "B2"}
	wantType := []models.CellType{models.TypeString, models.TypeNumber, models.TypeNumber, models.TypeBoolean}
	wantValue := []string{"Header", "100", "200.5", "true"}
	for i, cell := range table.Cells {
		assert.Equal(t, wantAddr[i], cell.Address, "cell %d", i)
		assert.Equal(t, wantType[i], cell.DataType, "cell %d", i)
		assert.Equal(t, wantValue[i], cell.Value, "cell %d", i)
	}

	assert.Empty(t, table.MergedRanges)
}

func TestParseWorkbook_SheetOrder(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Alpha"))
	_, err := f.NewSheet("Beta")
	require.NoError(t, err)
	_, err = f.NewSheet("Gamma")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Beta", "A1", "b"))
	require.NoError(t, f.SetCellValue("Gamma", "A1", "g"))

	table, err := ParseWorkbook(buildWorkbook(t, f))
	require.NoError(t, err)

	require.Len(t, table.Sheets, 3)
	for i, want := range []string{"Alpha", "Beta", "Gamma"} {
		assert.Equal(t, want, table.Sheets[i].Name)
		assert.Equal(t, i, table.Sheets[i].Index)
	}

	// Cells are sheet-major: Beta's cell precedes Gamma's.
	require.Len(t, table.Cells, 2)
	assert.Equal(t, "Beta", table.Cells[0].Sheet)
	assert.Equal(t, "Gamma", table.Cells[1].Sheet)
}

func TestParseWorkbook_Sparsity(t *testing.T) {
	f := excelize.NewFile()
	// A single populated cell in a 10x10 area yields exactly one Cell.
	require.NoError(t, f.SetCellValue("Sheet1", "C3", "lonely"))

	table, err := ParseWorkbook(buildWorkbook(t, f))
	require.NoError(t, err)

	require.Len(t, table.Cells, 1)
	assert.Equal(t, "C3", table.Cells[0].Address)
	assert.Equal(t, 3, table.Cells[0].Row)
	assert.Equal(t, 3, table.Cells[0].Col)
}

func TestParseWorkbook_RowMajorOrder(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "b2"))
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "a1"))
	require.NoError(t, f.SetCellValue("Sheet1", "C1", "c1"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "a3"))

	table, err := ParseWorkbook(buildWorkbook(t, f))
	require.NoError(t, err)

	var addrs []string
	for _, cell := range table.Cells {
		addrs = append(addrs, cell.Address)
	}
	assert.Equal(t, []string{"A1", "C1", "B2", "A3"}, addrs)
}

func TestParseWorkbook_DateCell(t *testing.T) {
	f := excelize.NewFile()
	when := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", when))

	table, err := ParseWorkbook(buildWorkbook(t, f))
	require.NoError(t, err)

	require.Len(t, table.Cells, 1)
	assert.Equal(t, models.TypeDateTime, table.Cells[0].DataType)
	assert.Equal(t, "2023-04-01T12:00:00", table.Cells[0].Value)
}

func TestParseWorkbook_CorruptContainer(t *testing.T) {
	_, err := ParseWorkbook([]byte("definitely not a workbook"))
	assert.Error(t, err)
}

func TestParseWorkbook_EmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()

	table, err := ParseWorkbook(buildWorkbook(t, f))
	require.NoError(t, err)

	require.Len(t, table.Sheets, 1)
	assert.NotNil(t, table.Cells)
	assert.Empty(t, table.Cells)
}
