package models

// ImportResult reports a best-effort CSV import: rows that fail to parse or
// persist are recorded in Errors and the rest are imported.
type ImportResult struct {
	Imported  int      `json:"imported"`
	Errors    []string `json:"errors"`
	TotalRows int      `json:"total_rows"`
}
