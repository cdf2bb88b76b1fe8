package domain

import "time"

type Journey struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
