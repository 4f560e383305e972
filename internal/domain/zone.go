package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ZoneStatus string

const (
	ZoneActive   ZoneStatus = "ACTIVE"
	ZoneResolved ZoneStatus = "RESOLVED"
)

func (s ZoneStatus) IsValid() bool {
	switch s {
	case ZoneActive, ZoneResolved:
		return true
	default:
		return false
	}
}

type DisasterType string

const (
	DisasterFlood      DisasterType = "FLOOD"
	DisasterFire       DisasterType = "FIRE"
	DisasterEarthquake DisasterType = "EARTHQUAKE"
	DisasterLandslide  DisasterType = "LANDSLIDE"
	DisasterTyphoon    DisasterType = "TYPHOON"
)

func (t DisasterType) IsValid() bool {
	switch t {
	case DisasterFlood, DisasterFire, DisasterEarthquake, DisasterLandslide, DisasterTyphoon:
		return true
	default:
		return false
	}
}

type DangerLevel string

const (
	DangerLow    DangerLevel = "LOW"
	DangerMedium DangerLevel = "MEDIUM"
	DangerHigh   DangerLevel = "HIGH"
)

func (l DangerLevel) IsValid() bool {
	switch l {
	case DangerLow, DangerMedium, DangerHigh:
		return true
	default:
		return false
	}
}

// Zone is an administrator-drawn hazard area. GeoJSON holds the raw
// geometry document as drawn on the map; it is immutable after
// creation — only name, description and status may change.
type Zone struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	Description  string          `json:"description" db:"description"`
	Status       ZoneStatus      `json:"status" db:"status"`
	DisasterType DisasterType    `json:"disaster_type" db:"disaster_type"`
	DangerLevel  DangerLevel     `json:"danger_level" db:"danger_level"`
	GeoJSON      json.RawMessage `json:"geo_json" db:"geo_json"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
	ResolvedAt   *time.Time      `json:"resolved_at,omitempty" db:"resolved_at"`

	AffectedCount int64 `json:"affected_count,omitempty" db:"affected_count"`
}

type CreateZoneInput struct {
	Name         string       `json:"name" validate:"required,min=1,max=255"`
	Description  string       `json:"description" validate:"max=2000"`
	Status       ZoneStatus   `json:"status" validate:"required"`
	DisasterType DisasterType `json:"disaster_type" validate:"required"`
	DangerLevel  DangerLevel  `json:"danger_level" validate:"required"`
	GeoJSON      string       `json:"geo_json" validate:"required"`
}

type UpdateZoneInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type ChangeZoneStatusInput struct {
	Status ZoneStatus `json:"status" validate:"required"`
}
