package models

import "github.com/google/uuid"

// Location is a named production location a scene slugline can resolve to.
// Address and City are nil when unknown; City only feeds the coarse
// same-city travel heuristic.
type Location struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	Address   *string
	City      *string
}
