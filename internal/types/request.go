// Package types provides type definitions for structured data used throughout the study-search system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// SearchRequest represents an API request to answer a question against a document.
type SearchRequest struct {
	Question string `json:"question" validate:"required,min=1"`
	Document string `json:"document" validate:"required,min=1"`
}

// DetectRequest represents an API request to parse a question without solving it.
type DetectRequest struct {
	Question string `json:"question" validate:"required,min=1"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the DetectRequest using the validator.
func (r *DetectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
