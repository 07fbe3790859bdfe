package postgres

import (
	"context"
	"fmt"
	"log"

	"elemdex/adapters/excel"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// CatalogSource loads the element table from a Postgres relation instead of
// a spreadsheet. The relation's column names become the catalog headers.
type CatalogSource struct {
	db    *sqlx.DB
	table string
}

// NewCatalogSource creates a catalog source backed by the given table
func NewCatalogSource(db *sqlx.DB, table string) *CatalogSource {
	return &CatalogSource{db: db, table: table}
}

// ReadData fetches every row of the configured table. Rows arrive in
// whatever order the database returns them; that order becomes the
// catalog's dataset order.
func (s *CatalogSource) ReadData(ctx context.Context) (*excel.TableData, error) {
	query := fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(s.table))

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog table %s: %w", s.table, err)
	}
	defer rows.Close()

	headers, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog columns: %w", err)
	}

	var dataRows []excel.RawRowData
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		rowData := make(excel.RawRowData, len(headers))
		for i, header := range headers {
			if i >= len(values) || values[i] == nil {
				rowData[header] = ""
				continue
			}
			switch v := values[i].(type) {
			case []byte:
				rowData[header] = string(v)
			case string:
				rowData[header] = v
			default:
				rowData[header] = fmt.Sprintf("%v", v)
			}
		}
		dataRows = append(dataRows, rowData)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog row iteration failed: %w", err)
	}

	if len(dataRows) == 0 {
		return nil, fmt.Errorf("catalog table %s has no rows", s.table)
	}

	log.Printf("[CatalogSource] Loaded %d rows (%d columns) from table %s",
		len(dataRows), len(headers), s.table)

	return &excel.TableData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
