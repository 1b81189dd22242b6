package ingest

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// buildWorkbook 在内存中生成xlsx，rows中nil表示空单元格
func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, v))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func parseSheet(t *testing.T, resolver BarcodeResolver, rows [][]interface{}) ([]Entry, error) {
	t.Helper()
	return NewParser(resolver).Parse(context.Background(), "stock.xlsx", buildWorkbook(t, rows))
}

func TestParseTabular_Rows(t *testing.T) {
	entries, err := parseSheet(t, newResolver("111", "222"), [][]interface{}{
		{"111", 10},
		{"222", -4},
		{"111", 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Barcode: "111", Quantity: 10, Line: 1},
		{Barcode: "222", Quantity: -4, Line: 2},
		{Barcode: "111", Quantity: 0, Line: 3},
	}, entries)
}

func TestParseTabular_NumericCells(t *testing.T) {
	entries, err := parseSheet(t, newResolver("9785171012345"), [][]interface{}{
		{9785171012345, 3.0},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "9785171012345", entries[0].Barcode)
	assert.Equal(t, 3, entries[0].Quantity)
}

func TestParseTabular_DecimalTextCells(t *testing.T) {
	entries, err := parseSheet(t, newResolver("111"), [][]interface{}{
		{"111", "5.0"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Barcode: "111", Quantity: 5, Line: 1}}, entries)

	_, err = parseSheet(t, newResolver("111"), [][]interface{}{
		{"111", 1},
		{"111", "1e3"},
	})
	assertIngestError(t, err, KindInvalidQuantity, 2)
}

func TestParseTabular_EmptyBarcodeSkipped(t *testing.T) {
	entries, err := parseSheet(t, newResolver("111"), [][]interface{}{
		{"111", 1},
		{nil, "garbage"},
		{"111", 2},
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[1].Line, "行号应与物理行一致")
}

func TestParseTabular_Errors(t *testing.T) {
	t.Run("条码不存在", func(t *testing.T) {
		_, err := parseSheet(t, newResolver("111"), [][]interface{}{
			{"111", 1},
			{"999", 1},
		})
		assertIngestError(t, err, KindUnknownBarcode, 2)
		assert.Equal(t, "Unknown barcode in row 2", apperrors.GetAppError(err).Message)
	})

	t.Run("先校验条码再校验数量", func(t *testing.T) {
		_, err := parseSheet(t, newResolver(), [][]interface{}{
			{"999", "abc"},
		})
		assertIngestError(t, err, KindUnknownBarcode, 1)
	})

	t.Run("数量非法", func(t *testing.T) {
		_, err := parseSheet(t, newResolver("111"), [][]interface{}{
			{"111", 1},
			{"111", 2},
			{"111", "many"},
		})
		assertIngestError(t, err, KindInvalidQuantity, 3)
	})

	t.Run("缺少数量", func(t *testing.T) {
		_, err := parseSheet(t, newResolver("111"), [][]interface{}{
			{"111"},
		})
		assertIngestError(t, err, KindInvalidQuantity, 1)
	})
}

func TestParseTabular_NotAWorkbook(t *testing.T) {
	_, err := NewParser(newResolver()).Parse(context.Background(), "stock.xlsx", bytes.NewBufferString("plain text"))
	require.Error(t, err)

	var ie *Error
	assert.NotErrorAs(t, err, &ie)
}
