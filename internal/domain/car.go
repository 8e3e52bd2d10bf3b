package domain

import "time"

// Car represents a registered vehicle. A car always belongs to exactly one
// user; the license plate is unique across the whole system.
type Car struct {
	ID           int64
	OwnerID      int64
	LicensePlate string // Korean format: 3 digits + plate syllable + 4 digits
	Brand        string
	Model        string
	CreatedAt    time.Time
}

// IsOwnedBy returns true if the car belongs to the given user.
func (c *Car) IsOwnedBy(userID int64) bool {
	return c.OwnerID == userID
}
