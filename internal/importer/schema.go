// Package importer reads swim history exported as JSON so it can be loaded
// in one transaction.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

// ImportSchema is the top-level JSON structure of a history file.
type ImportSchema struct {
	Profile  *domain.AthleteProfile `json:"profile,omitempty"`
	Sessions []SessionImport        `json:"sessions"`
}

// SessionImport is one logged swim. Dates stay strings until validation so
// every bad row can be reported at once.
type SessionImport struct {
	Date       string `json:"date"`
	Type       string `json:"type"`
	DistanceM  int    `json:"distance_m"`
	TimeMin    *int   `json:"time_min,omitempty"`
	Effort     string `json:"effort,omitempty"`
	RPE        *int   `json:"rpe,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Conditions string `json:"conditions,omitempty"`
}

// LoadImportSchema reads and parses a history file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
