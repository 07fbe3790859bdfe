package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ToCSV serializes rows as UTF-8 CSV: a header row of column names, one
// record per row, no index column. Column order follows the dataset.
func ToCSV(columns []string, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row.Get(col)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("CSV flush failed: %w", err)
	}
	return buf.Bytes(), nil
}
