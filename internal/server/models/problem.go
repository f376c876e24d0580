package models

import "time"

// Problem is a solved-problem record. Problems are a shared list, not scoped
// to a user.
type Problem struct {
	ID         string
	Title      string
	Platform   string
	Difficulty string
	Status     string
	Link       string
	Tags       string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
