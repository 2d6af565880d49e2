package domain

import "fmt"

// StructureError reports an upstream document that no longer matches the
// shape a strategy was written against. It is fatal for the request: the
// engine never guesses fields out of a redesigned page.
type StructureError struct {
	Provider string
	Detail   string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: unexpected document structure: %s", e.Provider, e.Detail)
}

// Structuref builds a StructureError with a formatted detail message.
func Structuref(provider, format string, args ...any) *StructureError {
	return &StructureError{Provider: provider, Detail: fmt.Sprintf(format, args...)}
}
