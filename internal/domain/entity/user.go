// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User represents a registered account in the sales platform.
// Passwords are stored exactly as provided; the login pipeline compares them
// case-insensitively, which rules out one-way hashing.
type User struct {
	ID        int64     // Identifier assigned by the persistence layer.
	Name      string    // The user's display name.
	Email     string    // Login identifier, unique case-insensitively across all users.
	Password  string    // Stored as provided.
	BirthDate time.Time // Date of birth; users must be at least 18 at creation.
	ProfileID int64     // Reference to the seeded Profile that grants the user's role.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age returns the user's age in full years at the given reference time,
// accounting for a birthday that has not yet occurred this year.
func (u *User) Age(now time.Time) int {
	years := now.Year() - u.BirthDate.Year()
	anniversary := time.Date(now.Year(), u.BirthDate.Month(), u.BirthDate.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		years--
	}

	return years
}
