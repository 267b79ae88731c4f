package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoundFilter contains filtering parameters for round listings.
type RoundFilter struct {
	// AnalystID restricts the list to one analyst's rounds.
	AnalystID *uuid.UUID

	// Status filters by status. Finished also matches legacy cancelled rows.
	Status *RoundStatus

	// StartedFrom and StartedTo bound started_at as [from, to).
	StartedFrom *time.Time
	StartedTo   *time.Time

	// Limit is the maximum number of rounds to return.
	Limit int
}
