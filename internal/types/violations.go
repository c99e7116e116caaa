// Package types provides the document types read and written by the violations CLI.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ViolationRecord is the on-disk shape of a single violation.
// Message may be empty, as it may be on an in-memory violation.
type ViolationRecord struct {
	Message         string         `json:"message"`
	MessageTemplate string         `json:"message_template,omitempty"`
	Parameters      map[string]any `json:"parameters,omitempty"`
	PropertyPath    string         `json:"property_path,omitempty"`
	InvalidValue    any            `json:"invalid_value,omitempty"`
	Plural          *int           `json:"plural,omitempty" validate:"omitempty,min=0"`

	// Code is a pointer so that an omitted code and "" stay distinct
	Code *string `json:"code,omitempty"`
}

// ViolationReport is a document holding a list of violations
type ViolationReport struct {
	ReportID   *uuid.UUID        `json:"report_id,omitempty"`
	Violations []ViolationRecord `json:"violations" validate:"dive"`
}

// Validate validates the ViolationReport using the validator.
func (r *ViolationReport) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
