package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// parseTabular 解析.xlsx
// 规则：
// 1. 条码为空的行整行跳过（数量列即使非法也不报错）
// 2. 先校验条码再校验数量
// 3. 行号与表格中的物理行一致
func parseTabular(ctx context.Context, r io.Reader, known *barcodeSet) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("打开xlsx文件失败: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []Entry{}, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		barcode := cell(row, 0)
		if barcode == "" {
			continue
		}

		ok, err := known.exists(ctx, barcode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newError(KindUnknownBarcode, FormatXLSX, rowNum)
		}

		qty, ok := parseCellQuantity(cell(row, 1))
		if !ok {
			return nil, newError(KindInvalidQuantity, FormatXLSX, rowNum)
		}

		entries = append(entries, Entry{Barcode: barcode, Quantity: qty, Line: rowNum})
	}

	return entries, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
