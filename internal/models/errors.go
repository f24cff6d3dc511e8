package models

import "fmt"

// UserNotFoundError reports a lookup for a user id that is not in the dataset
// or similarity matrix. Distinct from an empty recommendation set, which is a
// legitimate value.
type UserNotFoundError struct {
	UserID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q not found in the dataset", e.UserID)
}

// CategoryNotFoundError reports a category name with no matching row in the
// dataset (matching is case-insensitive).
type CategoryNotFoundError struct {
	Category string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %q not found in the dataset", e.Category)
}

// ValidationError reports malformed or unusable input at a component boundary
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
