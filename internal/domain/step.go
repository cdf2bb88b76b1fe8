package domain

import "time"

type Step struct {
	ID         string
	StageID    string
	Name       string
	Status     StepStatus
	OrderIndex int // stage-scoped insertion order
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
