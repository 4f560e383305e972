package domain

import (
	"time"

	"github.com/google/uuid"
)

// AffectedLocation records that a location was found inside a zone's
// boundary at computation time. At most one row exists per
// (zone_id, location_id) pair; the store enforces uniqueness and
// duplicate inserts are idempotent no-ops.
type AffectedLocation struct {
	ZoneID     uuid.UUID `json:"zone_id" db:"zone_id"`
	LocationID uuid.UUID `json:"location_id" db:"location_id"`
	IsNotified bool      `json:"is_notified" db:"is_notified"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// AffectedPair identifies an association to insert.
type AffectedPair struct {
	ZoneID     uuid.UUID
	LocationID uuid.UUID
}

// AffectedZone is an association seen from the location side, with the
// zone's hazard details attached. Used for live warnings and history.
type AffectedZone struct {
	ZoneID       uuid.UUID    `json:"zone_id" db:"zone_id"`
	LocationID   uuid.UUID    `json:"location_id" db:"location_id"`
	IsNotified   bool         `json:"is_notified" db:"is_notified"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	ZoneName     string       `json:"zone_name" db:"zone_name"`
	ZoneStatus   ZoneStatus   `json:"zone_status" db:"zone_status"`
	DisasterType DisasterType `json:"disaster_type" db:"disaster_type"`
	DangerLevel  DangerLevel  `json:"danger_level" db:"danger_level"`
}

// AffectedLocationDetail is an association seen from the zone side.
type AffectedLocationDetail struct {
	ZoneID       uuid.UUID `json:"zone_id" db:"zone_id"`
	LocationID   uuid.UUID `json:"location_id" db:"location_id"`
	IsNotified   bool      `json:"is_notified" db:"is_notified"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	LocationName string    `json:"location_name" db:"location_name"`
	Latitude     float64   `json:"latitude" db:"latitude"`
	Longitude    float64   `json:"longitude" db:"longitude"`
}
