package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRateNotFound     = errors.New("tariff rate not found")
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrRateReferenced blocks hard deletion of a rate that shipment
	// history still points at. Deactivate instead.
	ErrRateReferenced = errors.New("tariff rate is referenced by shipment history")
	// ErrWeightOutOfRange is a defensive integrity error: a resolved rate
	// was asked to price a weight outside its own bracket.
	ErrWeightOutOfRange = errors.New("weight outside resolved rate bounds")
)

// ValidationError reports structurally invalid rate fields. Raised before
// any mutation, never auto-corrected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError carries the full list of active rates whose scope overlaps
// a rejected candidate.
type ConflictError struct {
	Conflicts []RateConflict
}

func (e *ConflictError) Error() string {
	details := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		details[i] = fmt.Sprintf("rate %s (%s to %s, weight %.2f..%.2f)",
			c.RateID,
			c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"),
			c.MinWeight, c.MaxWeight)
	}
	return "overlapping rates found: " + strings.Join(details, ", ")
}
