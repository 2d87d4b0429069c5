// Package memory provides in-memory repository implementations backed by
// maps. They are used by service tests and honor the same contracts as the
// PostgreSQL repositories, including nil-on-absent lookups.
package memory

import (
	"context"
	"time"
)

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

// Transactor is a pass-through: the map stores are not transactional, so fn
// runs directly against them.
type Transactor struct{}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
