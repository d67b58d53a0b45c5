package models

import (
	"time"
)

// MaxLevel is the highest level a user can reach
const MaxLevel = 100

// User represents a persisted record of a Discord user
type User struct {
	// ID is the Discord user ID
	ID string

	// Name is the display name of the user
	Name string

	// Experience is the total experience the user has earned
	Experience int

	// Level is the current level of the user
	Level int

	// Currency is the user's morbcoin balance
	Currency int

	// UpdatedAt is when the record was last written
	UpdatedAt time.Time
}

// NextLevelExperience returns the total experience required to reach the
// level after the given one. The curve is quadratic, so each level costs
// more than the last.
func NextLevelExperience(level int) int {
	next := level + 1
	return 50 * next * next
}

// AddExperience applies an experience grant and returns true if the user
// leveled up. A single grant advances at most one level, capped at MaxLevel.
func (u *User) AddExperience(amount int) bool {
	u.Experience += amount
	if u.Level >= MaxLevel {
		return false
	}
	if u.Experience >= NextLevelExperience(u.Level) {
		u.Level++
		return true
	}
	return false
}
