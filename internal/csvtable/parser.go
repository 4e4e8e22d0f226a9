// Package csvtable parses raw CSV text into bounded preview tables for the
// import workflow. The parser is quote-aware: fields produced by AI
// enrichment routinely contain literal commas and embedded newlines, which a
// line-split approach would mangle.
package csvtable

import "strings"

// Parse converts a full CSV document into records of trimmed cells.
//
// Inside a quoted field a doubled quote is a literal quote, and commas,
// carriage returns, and newlines do not terminate the field. Outside quotes,
// \n, \r, or \r\n ends the record. Cells are trimmed of surrounding
// whitespace after quote removal, records whose cells are all blank are
// dropped, and trailing data without a final newline still yields a record.
// Parse is a pure function: the same input always produces the same output.
func Parse(text string) [][]string {
	var (
		records  [][]string
		record   []string
		field    strings.Builder
		inQuotes bool
	)

	runes := []rune(text)
	endField := func() {
		record = append(record, strings.TrimSpace(field.String()))
		field.Reset()
	}
	endRecord := func() {
		endField()
		if !blankRecord(record) {
			records = append(records, record)
		}
		record = nil
	}

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			endField()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			endRecord()
		default:
			field.WriteRune(ch)
		}
	}

	// Trailing data with no terminating newline is still a record.
	endRecord()

	return records
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
