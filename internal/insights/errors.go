package insights

import "errors"

var (
	// ErrInvalidEntityID is returned for empty or whitespace-only entity ids.
	ErrInvalidEntityID = errors.New("entity id must not be empty")

	// ErrInvalidMetrics is returned when a metrics snapshot fails validation.
	ErrInvalidMetrics = errors.New("invalid vendor metrics")
)
