package output

import (
	"encoding/json"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
)

// ToJSON renders the table as an indented JSON document mirroring the
// model structure field for field.
func ToJSON(t *models.Table) (string, error) {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
