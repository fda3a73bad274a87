// Package output serializes pipeline results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/models"
)

// ToJSON serializes a run result.
func ToJSON(result *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
