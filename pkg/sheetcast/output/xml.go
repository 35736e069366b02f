package output

import (
	"encoding/xml"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
)

// ToXML renders the table as nested elements under a <table> root,
// with plural wrapper elements (sheets, cells, merged_ranges) around
// singular children so field names reconstruct unambiguously.
func ToXML(t *models.Table) (string, error) {
	b, err := xml.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(b) + "\n", nil
}
