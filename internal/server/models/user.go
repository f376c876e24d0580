// Package models holds the server-side entities persisted in PostgreSQL.
package models

import "time"

// User is the sole entity with security-relevant invariants: username and
// email are unique, and the password is stored only as a bcrypt digest.
type User struct {
	ID             string
	Username       string
	Email          string
	PasswordDigest string
	Name           string
	Codeforces     string
	Codechef       string
	Leetcode       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
