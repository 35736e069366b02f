// Package sheetcast converts tabular spreadsheet data into structured
// text formats.
package sheetcast

import (
	"fmt"
	"strings"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
	"github.com/sheetcast/sheetcast/pkg/sheetcast/output"
	"github.com/sheetcast/sheetcast/pkg/sheetcast/parser"
)

// Result is a serialized conversion payload with its content type.
type Result struct {
	Payload     string
	ContentType string
}

// Convert ingests raw source bytes into the canonical table model and
// serializes it into the named output format. Adapter selection follows
// the source name suffix: ".csv" (case-insensitive) selects the
// delimited-text adapter, anything else the workbook adapter. Each call
// is an independent computation with no shared state, so conversions
// may run concurrently.
func Convert(data []byte, sourceName, format string) (*Result, error) {
	fm, ok := output.Lookup(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnknownFormat, format, strings.Join(output.Names(), ", "))
	}

	table, err := ingest(data, sourceName)
	if err != nil {
		return nil, &IngestionError{Source: sourceName, Err: err}
	}

	payload, err := fm.Serialize(table)
	if err != nil {
		return nil, fmt.Errorf("serializing to %s: %w", fm.Name, err)
	}
	return &Result{Payload: payload, ContentType: fm.ContentType}, nil
}

func ingest(data []byte, sourceName string) (*models.Table, error) {
	if strings.HasSuffix(strings.ToLower(sourceName), ".csv") {
		return parser.ParseCSV(data)
	}
	return parser.ParseWorkbook(data)
}
