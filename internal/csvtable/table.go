package csvtable

// PreviewRowLimit bounds how many data rows a Table retains for rendering.
// Submission always uses the complete original file, never the preview.
const PreviewRowLimit = 10

// Table is a parsed CSV document with a bounded in-memory preview.
// Rows holds at most the preview limit; TotalRows always reflects the full
// document. Header uniqueness and per-row arity are not enforced.
type Table struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"total_rows"`
	Columns   int        `json:"columns"`
}

// New builds a Table from parsed records. The first record is the header row;
// the remaining records are data rows, of which at most previewLimit are
// retained. Returns nil when records is empty — callers must treat that as an
// empty-file condition, not a valid zero-row table.
func New(records [][]string, previewLimit int) *Table {
	if len(records) == 0 {
		return nil
	}
	if previewLimit <= 0 {
		previewLimit = PreviewRowLimit
	}

	headers := records[0]
	data := records[1:]

	preview := data
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}

	return &Table{
		Headers:   headers,
		Rows:      preview,
		TotalRows: len(data),
		Columns:   len(headers),
	}
}
