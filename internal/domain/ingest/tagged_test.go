package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstock/pkg/errors"
)

// staticResolver 固定条码集合
type staticResolver struct {
	known map[string]bool
	calls int
	err   error
}

func (r *staticResolver) BarcodeExists(_ context.Context, barcode string) (bool, error) {
	r.calls++
	if r.err != nil {
		return false, r.err
	}
	return r.known[barcode], nil
}

func newResolver(barcodes ...string) *staticResolver {
	r := &staticResolver{known: map[string]bool{}}
	for _, b := range barcodes {
		r.known[b] = true
	}
	return r
}

func parseText(t *testing.T, resolver BarcodeResolver, lines ...string) ([]Entry, error) {
	t.Helper()
	body := strings.Join(lines, "\n")
	return NewParser(resolver).Parse(context.Background(), "stock.txt", strings.NewReader(body))
}

func assertIngestError(t *testing.T, err error, kind Kind, line int) {
	t.Helper()
	var ie *Error
	require.True(t, errors.As(err, &ie), "expected *ingest.Error, got %v", err)
	assert.Equal(t, kind, ie.Kind)
	assert.Equal(t, line, ie.Line)
}

func TestParseTagged_Pairs(t *testing.T) {
	entries, err := parseText(t, newResolver("123", "456"),
		"BRC 123",
		"QNT 5",
		"BRC 456",
		"QNT -2",
	)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Barcode: "123", Quantity: 5, Line: 2},
		{Barcode: "456", Quantity: -2, Line: 4},
	}, entries)
}

func TestParseTagged_QuantityReusesLastBarcode(t *testing.T) {
	entries, err := parseText(t, newResolver("123"),
		"BRC 123",
		"QNT 1",
		"QNT 2",
	)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "123", entries[1].Barcode)
}

func TestParseTagged_EmptyBarcodeKeepsPrevious(t *testing.T) {
	entries, err := parseText(t, newResolver("123"),
		"BRC 123",
		"BRC   ",
		"QNT 7",
	)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Barcode: "123", Quantity: 7, Line: 3}}, entries)
}

func TestParseTagged_CRLF(t *testing.T) {
	entries, err := parseText(t, newResolver("123"), "BRC 123\r", "QNT 4\r")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Barcode: "123", Quantity: 4, Line: 2}}, entries)
}

func TestParseTagged_UTF8BOM(t *testing.T) {
	entries, err := parseText(t, newResolver("123"), "\uFEFFBRC 123", "QNT 2")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Barcode: "123", Quantity: 2, Line: 2}}, entries)
}

func TestParseTagged_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		kind  Kind
		line  int
	}{
		{"短行", []string{"BRC 123", "QN"}, KindMalformedLine, 2},
		{"空行", []string{"BRC 123", "", "QNT 1"}, KindMalformedLine, 2},
		{"QNT在BRC之前", []string{"QNT 5", "BRC 123"}, KindUnpairedQuantity, 1},
		{"空BRC之后的QNT", []string{"BRC", "QNT 5"}, KindUnpairedQuantity, 2},
		{"数量不是整数", []string{"BRC 123", "QNT five"}, KindInvalidQuantity, 2},
		{"数量为小数", []string{"BRC 123", "QNT 1.5"}, KindInvalidQuantity, 2},
		{"整数值小数", []string{"BRC 123", "QNT 7.0"}, KindInvalidQuantity, 2},
		{"科学计数法", []string{"BRC 123", "QNT 1e3"}, KindInvalidQuantity, 2},
		{"十六进制浮点", []string{"BRC 123", "QNT 0x1p4"}, KindInvalidQuantity, 2},
		{"条码不存在", []string{"BRC 123", "QNT 1", "BRC 999"}, KindUnknownBarcode, 3},
		{"未知标签", []string{"BRC 123", "XYZ 1"}, KindUnknownTag, 2},
		{"标签区分大小写", []string{"brc 123"}, KindUnknownTag, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries, err := parseText(t, newResolver("123"), tc.lines...)
			assert.Nil(t, entries)
			assertIngestError(t, err, tc.kind, tc.line)
		})
	}
}

func TestParseTagged_ResolverCalledOncePerBarcode(t *testing.T) {
	r := newResolver("123")
	_, err := parseText(t, r, "BRC 123", "QNT 1", "BRC 123", "QNT 2")
	require.NoError(t, err)
	assert.Equal(t, 1, r.calls)
}

func TestParseTagged_ResolverFailure(t *testing.T) {
	r := &staticResolver{err: errors.New("db down")}
	_, err := parseText(t, r, "BRC 123")
	assert.ErrorContains(t, err, "db down")

	var ie *Error
	assert.False(t, errors.As(err, &ie))
}

func TestParseTagged_EmptyFile(t *testing.T) {
	entries, err := parseText(t, newResolver())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestError_AppErrorMapping(t *testing.T) {
	_, err := parseText(t, newResolver("123"), "BRC 123", "QNT x")

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.NotErrorIs(t, err, ErrUnknownBarcode)

	appErr := apperrors.GetAppError(err)
	assert.Equal(t, apperrors.ErrCodeInvalidQuantity, appErr.Code)
	assert.Equal(t, "Invalid quantity in line 2", appErr.Message)
	assert.Equal(t, "Invalid quantity", ErrInvalidQuantity.Message)
}
