package domain

import "time"

type Stage struct {
	ID         string
	JourneyID  string
	Name       string
	OrderIndex int // journey-scoped insertion order
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
