package common

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds shared across services. Handlers map these to HTTP statuses,
// so they must stay distinguishable all the way up the call chain.
var (
	ErrAuthRequired = errors.New("authentication required")
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
	ErrValidation   = errors.New("validation failed")
)

// SigningError marks a failure to produce a signed URL. Unlike the sentinel
// errors above it is transient: the caller may retry the whole request.
type SigningError struct {
	Err error
}

func (s *SigningError) Error() string {
	return fmt.Sprintf("failed to sign url: %v", s.Err)
}

func (s *SigningError) Unwrap() error {
	return s.Err
}

func NewSigningError(err error) error {
	return &SigningError{Err: err}
}

func IsSigningError(err error) bool {
	var se *SigningError
	return errors.As(err, &se)
}

func ValidationError(field, reason string) error {
	return errors.Wrapf(ErrValidation, "%s: %s", field, reason)
}
