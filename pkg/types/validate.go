package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRecord checks the field constraints declared on a record type.
func ValidateRecord(record interface{}) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("record validation failed: %w", err)
	}

	return nil
}
