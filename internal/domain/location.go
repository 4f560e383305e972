package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is a user-registered point of interest monitored against
// hazard zones. Coordinates are WGS84 decimal degrees.
type Location struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Latitude    float64    `json:"latitude" db:"latitude"`
	Longitude   float64    `json:"longitude" db:"longitude"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"-" db:"deleted_at"`

	// ActiveZones carries the location's associations with currently
	// ACTIVE zones when the listing asks for them.
	ActiveZones []AffectedZone `json:"active_zones,omitempty"`
}

// OwnedLocation is a location joined with its owner's SMS contact,
// used by the matcher when a new zone scans all locations.
type OwnedLocation struct {
	Location
	OwnerPhone *string `json:"owner_phone,omitempty" db:"owner_phone"`
}

type CreateLocationInput struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Latitude    string `json:"latitude" validate:"required"`
	Longitude   string `json:"longitude" validate:"required"`
}

type UpdateLocationInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Latitude    *string `json:"latitude,omitempty"`
	Longitude   *string `json:"longitude,omitempty"`
}
