package models

import "time"

// Goal is a per-user target ("solve N problems by a date") with a running
// progress counter. Every goal is owned by exactly one user.
type Goal struct {
	ID           string
	UserID       string
	Title        string
	TargetCount  int
	TargetDate   string
	CurrentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
