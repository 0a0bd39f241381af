package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is the raw tabular content of one workbook sheet: the header
// row (deduplicated) and every data row keyed by raw header text.
type Sheet struct {
	Name         string
	HeaderOffset int
	Headers      []string
	Rows         []map[string]string
}

// ReadWorkbook opens an xlsx file and extracts headers and rows.
// Sheet and header offset are auto-detected: when a sheet with the
// seasonal-sale name exists it is used with the header in the first
// row, otherwise the first sheet is read with defaultOffset.
func ReadWorkbook(path, saleSheetName string, defaultOffset int) (*Sheet, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	name := sheets[0]
	offset := defaultOffset
	for _, sheet := range sheets {
		if sheet == saleSheetName {
			name = sheet
			offset = 0
			break
		}
	}

	rows, err := file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(rows) <= offset {
		return nil, fmt.Errorf("sheet %q has no header row at offset %d", name, offset)
	}

	headers := dedupeHeaders(rows[offset])

	result := &Sheet{
		Name:         name,
		HeaderOffset: offset,
		Headers:      headers,
	}

	for _, raw := range rows[offset+1:] {
		row := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(raw) {
				value = raw[i]
			}
			if value != "" {
				empty = false
			}
			row[header] = value
		}
		if empty {
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

// dedupeHeaders disambiguates repeated header names with _N suffixes
// so the mapping stays injective over raw headers.
func dedupeHeaders(raw []string) []string {
	seen := make(map[string]int, len(raw))
	headers := make([]string, len(raw))
	for i, header := range raw {
		if header == "" {
			headers[i] = ""
			continue
		}
		if n, ok := seen[header]; ok {
			seen[header] = n + 1
			headers[i] = fmt.Sprintf("%s_%d", header, n)
		} else {
			seen[header] = 1
			headers[i] = header
		}
	}
	return headers
}
