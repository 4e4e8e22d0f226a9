package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"leadmend/internal/export"
)

func TestWriteXLSX_RoundTrip(t *testing.T) {
	records := [][]string{
		{"name", "description"},
		{"Acme", "Maker of, everything"},
		{"Globex", "line1\nline2"},
	}

	var buf bytes.Buffer
	assert.NoError(t, export.WriteXLSX(&buf, records))

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Enriched Data")
	assert.NoError(t, err)
	assert.Equal(t, records, rows)
}

func TestWriteXLSX_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, export.WriteXLSX(&buf, nil))
	assert.NotZero(t, buf.Len())
}

func TestXLSXFilename(t *testing.T) {
	assert.Equal(t, "enriched_leads.xlsx", export.XLSXFilename("enriched_leads.csv"))
	assert.Equal(t, "enriched_LEADS.xlsx", export.XLSXFilename("enriched_LEADS.CSV"))
	assert.Equal(t, "artifact.xlsx", export.XLSXFilename("artifact"))
}
