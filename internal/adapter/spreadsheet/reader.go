// Package spreadsheet reads keyword exports (.xlsx, .xls, .csv) into header-keyed rows.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// zipMagic starts every OOXML workbook. Many tools save those with an .xls
// extension, so .xls content is sniffed before choosing a decoder.
var zipMagic = []byte("PK\x03\x04")

// ErrUnsupportedFormat is returned for file extensions the reader does not handle.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// duplicateDownload matches browser re-download names such as "export (1).xlsx".
var duplicateDownload = regexp.MustCompile(`\(\d+\)\.[^.]+$`)

// Row maps trimmed header names to trimmed cell values. Empty cells are absent.
type Row map[string]string

// First returns the first non-empty value among the given column names.
func (r Row) First(columns ...string) string {
	for _, c := range columns {
		if v := r[c]; v != "" {
			return v
		}
	}
	return ""
}

// Supported reports whether name has an extension Read understands.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xls", ".csv":
		return true
	}
	return false
}

// IsDuplicateDownload reports whether name looks like "file (2).xlsx".
func IsDuplicateDownload(name string) bool {
	return duplicateDownload.MatchString(name)
}

// Read parses the first sheet of a workbook, or a CSV file, chosen by the extension of name.
// The first row is the header.
func Read(name string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(r)
	case ".xls":
		return readLegacyWorkbook(r)
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
}

func readWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []Row{}, nil
	}

	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return toRows(records), nil
}

// readLegacyWorkbook reads the first sheet of a BIFF (Excel 97-2003) file.
func readLegacyWorkbook(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read xls: %w", err)
	}
	if bytes.HasPrefix(data, zipMagic) {
		return readWorkbook(bytes.NewReader(data))
	}

	records, err := legacyRecords(data)
	if err != nil {
		return nil, fmt.Errorf("open xls workbook: %w", err)
	}
	return toRows(records), nil
}

// legacyRecords decodes the first sheet. The BIFF decoder panics on some
// malformed files; that is reported as an error.
func legacyRecords(data []byte) (records [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed workbook: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	records = make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		rec := make([]string, row.LastCol())
		for c := range rec {
			rec[c] = row.Col(c)
		}
		records = append(records, rec)
	}
	return records, nil
}

func readCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return toRows(records), nil
}

func toRows(records [][]string) []Row {
	rows := []Row{}
	if len(records) == 0 {
		return rows
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		header[i] = strings.TrimSpace(h)
	}

	for _, rec := range records[1:] {
		row := Row{}
		for i, cell := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if v := strings.TrimSpace(cell); v != "" {
				row[header[i]] = v
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
