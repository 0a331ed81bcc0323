package util

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleDTO struct {
	Title       string `json:"title" validate:"required"`
	ContentType string `json:"content_type" validate:"omitempty,oneof=trend technology inspiration"`
	Value       *int   `json:"value" validate:"omitempty,min=1,max=5"`
}

func messageFor(t *testing.T, dto any) string {
	t.Helper()
	err := ValidateDTO(dto)
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	return ValidationMessage(vErrs)
}

func TestValidationMessageUsesJSONNames(t *testing.T) {
	if got := messageFor(t, &sampleDTO{}); got != "Missing required field: title" {
		t.Fatalf("got %q", got)
	}
	if got := messageFor(t, &sampleDTO{Title: "x", ContentType: "meme"}); got != "Invalid content_type. Must be one of: trend, technology, inspiration" {
		t.Fatalf("got %q", got)
	}
	six := 6
	if got := messageFor(t, &sampleDTO{Title: "x", Value: &six}); got != "Rating value must be an integer between 1 and 5" {
		t.Fatalf("got %q", got)
	}
}

func TestValidateDTOPasses(t *testing.T) {
	three := 3
	if err := ValidateDTO(&sampleDTO{Title: "x", ContentType: "trend", Value: &three}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
