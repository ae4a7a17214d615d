package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
)

var (
	// ErrPetTypeNotFound signals a pet type absent from the table being queried.
	ErrPetTypeNotFound = errors.New("pet type not found")
	// ErrInvalidInput signals a request parameter outside its allowed range.
	ErrInvalidInput = errors.New("invalid catalog input")
	// ErrEmptyCatalog signals a draw from a table with no entries.
	ErrEmptyCatalog = errors.New("catalog table is empty")
)

// Error carries a caller-facing detail while matching one of the sentinels above.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(petType domain.PetType, available []domain.PetType) error {
	return &Error{
		Kind:   ErrPetTypeNotFound,
		Detail: fmt.Sprintf("Pet type '%s' not found. Available types: %s", petType, formatKeys(available)),
	}
}

func invalidCount() error {
	return &Error{
		Kind:   ErrInvalidInput,
		Detail: fmt.Sprintf("Count must be between %d and %d", MinCount, MaxCount),
	}
}

// formatKeys renders keys as a bracketed list of quoted strings: ['dog', 'cat'].
func formatKeys(keys []domain.PetType) string {
	quoted := lo.Map(keys, func(key domain.PetType, _ int) string {
		return "'" + string(key) + "'"
	})
	return "[" + strings.Join(quoted, ", ") + "]"
}
