package domain

import (
	"errors"
	"fmt"
)

// Recommendation error taxonomy. No failure is swallowed into a default
// ranking; every one aborts the request with an identifiable reason.
var (
	// ErrInvalidEra marks an unknown era label. Caller input error.
	ErrInvalidEra = errors.New("invalid era")

	// ErrNoCandidates marks a query too narrow to match any catalog
	// entry. Recoverable: the caller should relax preferences.
	ErrNoCandidates = errors.New("no movies match the given criteria")

	// ErrMissingFeatures marks a catalog with empty rich-feature text.
	// Fatal to the request; the preprocessing pipeline must be rerun.
	ErrMissingFeatures = errors.New("rich features missing from catalog")

	// ErrEmptyCorpus marks a candidate set with no usable text terms.
	// Surfaced like ErrNoCandidates.
	ErrEmptyCorpus = errors.New("candidate corpus has no usable terms")
)

// ExternalModelError wraps a failure from an external model capability
// (semantic embedder or affect classifier). Not retried internally; the
// caller may retry the whole request.
type ExternalModelError struct {
	Model string
	Err   error
}

func (e *ExternalModelError) Error() string {
	return fmt.Sprintf("external model %s: %v", e.Model, e.Err)
}

func (e *ExternalModelError) Unwrap() error {
	return e.Err
}

// IsExternalModelError reports whether err wraps an ExternalModelError.
func IsExternalModelError(err error) bool {
	var target *ExternalModelError
	return errors.As(err, &target)
}
