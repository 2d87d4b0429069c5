package employee

import (
	"time"
)

type Employee struct {
	ID           string
	FullName     string
	Registration string
	Position     string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
