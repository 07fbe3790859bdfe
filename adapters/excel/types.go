package excel

// RawRowData maps column headers to trimmed cell values for one sheet row
type RawRowData map[string]string

// TableData holds the raw tabular contents of an Excel or CSV source
type TableData struct {
	Headers []string
	Rows    []RawRowData
}
