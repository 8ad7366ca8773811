package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrIncompleteData        = errors.New("error.incomplete_data")
	ErrEmployeeAlreadyExists = errors.New("error.employee_already_exists")
	ErrStorage               = errors.New("error.storage")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeInternal   = "/problems/internal-error"
	ProblemTypeBadRequest = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrStorage) para falhas de persistência
func (e *DomainError) Is(target error) bool {
	return target == ErrStorage && e.Type == ProblemTypeInternal
}

// NewStorageError embrulha uma falha da camada de persistência.
// A mensagem final inclui a descrição da falha original.
func NewStorageError(message string, err error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeInternal,
		Title:   "error.internal.title",
		Message: message,
		Err:     err,
	}
}
