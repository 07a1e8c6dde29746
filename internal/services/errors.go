package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a malformed request or entry list. Nothing has
// been written when it is returned.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Details, "; "))
}

// StockError reports line items that could not be fulfilled. Products
// missing from the inventory and products with insufficient stock share the
// same detail list; either rejects the whole sale.
type StockError struct {
	Details []string
}

func (e *StockError) Error() string {
	return "insufficient stock"
}

// validationDetails flattens a validator error into per-field messages.
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("field %s failed on the '%s' rule", fe.Namespace(), fe.Tag()))
	}
	return details
}
