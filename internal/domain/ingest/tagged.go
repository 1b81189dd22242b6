package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	tagBarcode  = "BRC"
	tagQuantity = "QNT"

	maxLineSize = 1 << 20

	utf8BOM = "\uFEFF"
)

// parseTagged 解析.txt
//
//	BRC 9785171012345   声明条码（只校验存在，不产生记录）
//	QNT 5               与最近一次BRC声明的条码配对，产生一条记录
//
// 规则：
// 1. 行长度小于3 → MalformedLine
// 2. BRC内容为空时跳过该行，之前声明的条码保持不变
// 3. 还没有BRC就出现QNT → UnpairedQuantity
// 4. 其他标签 → UnknownTag
func parseTagged(ctx context.Context, r io.Reader, known *barcodeSet) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		entries []Entry
		current string
		lineNum int
	)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNum == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		if len(line) < 3 {
			return nil, newError(KindMalformedLine, FormatTXT, lineNum)
		}

		tag, payload := line[:3], strings.TrimSpace(line[3:])

		switch tag {
		case tagBarcode:
			if payload == "" {
				continue
			}
			ok, err := known.exists(ctx, payload)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, newError(KindUnknownBarcode, FormatTXT, lineNum)
			}
			current = payload

		case tagQuantity:
			qty, ok := parseQuantity(payload)
			if !ok {
				return nil, newError(KindInvalidQuantity, FormatTXT, lineNum)
			}
			if current == "" {
				return nil, newError(KindUnpairedQuantity, FormatTXT, lineNum)
			}
			entries = append(entries, Entry{Barcode: current, Quantity: qty, Line: lineNum})

		default:
			return nil, newError(KindUnknownTag, FormatTXT, lineNum)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取文件失败(第%d行之后): %w", lineNum, err)
	}

	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
