package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "url", Message: "URL is required"}

	expected := "validation error on field 'url': URL is required"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{StatusCode: 503, Message: "non-success status", Host: "example.com"}

	expected := "external server error from example.com: 503 - non-success status"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIsValidation(t *testing.T) {
	err := &ValidationError{Field: "url", Message: "Invalid URL"}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if !IsValidation(fmt.Errorf("handling request: %w", err)) {
		t.Error("IsValidation should unwrap wrapped errors")
	}
	if IsValidation(errors.New("plain error")) {
		t.Error("IsValidation should return false for other errors")
	}
	if IsValidation(nil) {
		t.Error("IsValidation should return false for nil")
	}
	if IsValidation(&ExternalAPIError{StatusCode: 500}) {
		t.Error("IsValidation should return false for ExternalAPIError")
	}
}
