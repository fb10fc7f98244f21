package parser

import "fmt"

// ExtractionError means a grammar could not pull the required fields out of
// the prompt. The message is written for the end user and is surfaced
// verbatim; it is never treated as a system fault.
type ExtractionError struct {
	Field   string
	Message string
}

func (e *ExtractionError) Error() string {
	return e.Message
}

// MissingFieldError is a validation failure: a required draft field is empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// MalformedFieldError is a validation failure: a field is present but does
// not match its expected format.
type MalformedFieldError struct {
	Field  string
	Value  string
	Expect string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("field %q has invalid value %q, expected %s", e.Field, e.Value, e.Expect)
}
