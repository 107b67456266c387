package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rcliao/verbseed/internal/model"
)

// Spreadsheet seeds need a header row naming their columns. Column order is
// free; only infinitive and english are required.
var sheetColumns = []string{"infinitive", "english", "isIrregular", "category", "exampleSpanish", "exampleEnglish"}

// ReadCSV reads seed records from CSV with a header row.
func ReadCSV(r io.Reader) ([]model.VerbRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return recordsFromRows(rows)
}

// ReadXLSX reads seed records from an Excel workbook. An empty sheet name
// selects the first sheet.
func ReadXLSX(path, sheet string) ([]model.VerbRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return recordsFromRows(rows)
}

func recordsFromRows(rows [][]string) ([]model.VerbRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	index := make(map[string]int)
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range sheetColumns[:2] {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("header row is missing column %q", required)
		}
	}

	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	optional := func(row []string, column string) *string {
		if v := cell(row, column); v != "" {
			return &v
		}
		return nil
	}

	var records []model.VerbRecord
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := model.VerbRecord{
			Infinitive:     cell(row, "infinitive"),
			English:        cell(row, "english"),
			Category:       optional(row, "category"),
			ExampleSpanish: optional(row, "exampleSpanish"),
			ExampleEnglish: optional(row, "exampleEnglish"),
		}
		if v := cell(row, "isIrregular"); v != "" {
			irregular, err := strconv.ParseBool(v)
			if err != nil {
				// n is 0-based over data rows; +2 gives the sheet row number.
				return nil, fmt.Errorf("row %d: isIrregular: %w", n+2, err)
			}
			rec.IsIrregular = irregular
		}
		records = append(records, rec)
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
