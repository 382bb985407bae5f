package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/store"
)

// ErrNilDependency is returned by constructors when a required collaborator
// is missing.
var ErrNilDependency = errors.New("required dependency is nil")

// ServiceError wraps unexpected failures with the operation that produced them.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_comment")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError classifies err for the caller:
//
//   - *domain.Error values are returned unchanged.
//   - store.ErrNotFound becomes a not-found domain error with notFoundMsg.
//   - store.ErrInvalidInput and domain validation failures become bad requests.
//   - Everything else is wrapped in *ServiceError.
func NewServiceError(operation, message, notFoundMsg string, err error) error {
	if err == nil {
		return nil
	}

	if _, ok := domain.AsError(err); ok {
		return err
	}

	switch {
	case store.IsNotFoundError(err):
		return &domain.Error{Kind: domain.KindNotFound, Msg: notFoundMsg, Err: err}
	case store.IsInvalidInputError(err), isValidationError(err):
		return domain.BadRequest(err)
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrEmptyCommentBody) ||
		errors.Is(err, domain.ErrEmptyCommentAuthor) ||
		errors.Is(err, domain.ErrInvalidArticleID) ||
		errors.Is(err, domain.ErrEmptyUsername)
}
