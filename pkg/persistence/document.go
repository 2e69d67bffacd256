package persistence

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// loadDocument reads the JSON document at path into an ordered record
// slice. A missing file is an empty document. A file that cannot be decoded
// is reported and also treated as empty, so a corrupt document never fails
// the caller.
func loadDocument[T any](path string) ([]T, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return []T{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	records := []T{}
	if err := json.Unmarshal(data, &records); err != nil {
		logrus.Warnf("invalid data in %s, treating document as empty: %v", path, err)
		return []T{}, nil
	}

	return records, nil
}

// dumpDocument serializes records to path, replacing any previous content.
func dumpDocument[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document file: %w", err)
	}

	return nil
}
