// Package ingest 批量导入文件解析
//
// 支持两种格式（按文件名后缀区分大小写选择）：
//   - .xlsx：第一个工作表，第1列条码，第2列数量
//   - .txt：每行一个指令，前3个字符为标签（BRC条码 / QNT数量），其余为内容
//
// 解析必须完整走完整个文件（或在第一个错误处失败）之后才能写入账本，
// 因此校验失败时账本不会看到半个文件。
package ingest

import (
	"context"
	"io"
	"strconv"
	"strings"
)

// Format 文件格式
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatTXT  Format = "txt"
)

// Entry 解析出的一条记录
type Entry struct {
	Barcode  string
	Quantity int
	Line     int // 来源行号
}

// BarcodeResolver 校验条码是否属于某本图书
type BarcodeResolver interface {
	BarcodeExists(ctx context.Context, barcode string) (bool, error)
}

// Parser 导入文件解析器
type Parser struct {
	resolver BarcodeResolver
}

func NewParser(resolver BarcodeResolver) *Parser {
	return &Parser{resolver: resolver}
}

// DetectFormat 根据文件名后缀判断格式
func DetectFormat(filename string) (Format, error) {
	switch {
	case strings.HasSuffix(filename, ".xlsx"):
		return FormatXLSX, nil
	case strings.HasSuffix(filename, ".txt"):
		return FormatTXT, nil
	default:
		return "", newError(KindUnsupportedFormat, "", 0)
	}
}

// Parse 解析整个文件，返回按出现顺序排列的记录
// 第一个错误即终止，错误中带有行号
func (p *Parser) Parse(ctx context.Context, filename string, r io.Reader) ([]Entry, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	known := &barcodeSet{resolver: p.resolver, seen: map[string]bool{}}

	switch format {
	case FormatXLSX:
		return parseTabular(ctx, r, known)
	default:
		return parseTagged(ctx, r, known)
	}
}

// barcodeSet 单次解析内缓存条码校验结果
type barcodeSet struct {
	resolver BarcodeResolver
	seen     map[string]bool
}

func (b *barcodeSet) exists(ctx context.Context, barcode string) (bool, error) {
	if ok, cached := b.seen[barcode]; cached {
		return ok, nil
	}
	ok, err := b.resolver.BarcodeExists(ctx, barcode)
	if err != nil {
		return false, err
	}
	b.seen[barcode] = ok
	return ok, nil
}

// parseQuantity 解析整数数量（只接受十进制整数）
func parseQuantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseCellQuantity 解析表格数量单元格
// 数字单元格可能以"5.0"形式出现，小数部分全为0时接受
func parseCellQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if whole, frac, found := strings.Cut(s, "."); found {
		if frac == "" || strings.Trim(frac, "0") != "" {
			return 0, false
		}
		s = whole
	}
	return parseQuantity(s)
}
