// Package export ships a finished run to external sinks. Every function is a
// one-shot publish of a models.RunResult and reports failures without touching
// the run itself.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/qrlsm2/streambench/internal/models"
)

// WriteJSON stores the run as an indented JSON document at path.
func WriteJSON(path string, res *models.RunResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
