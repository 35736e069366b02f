package output

import (
	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
	"gopkg.in/yaml.v3"
)

// ToYAML renders the table as a YAML document with the same field
// names and ordering as the JSON form.
func ToYAML(t *models.Table) (string, error) {
	b, err := yaml.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
