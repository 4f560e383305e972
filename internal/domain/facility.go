package domain

import (
	"time"

	"github.com/google/uuid"
)

type FacilityType string

const (
	FacilityEvacuationCenter FacilityType = "EVACUATION_CENTER"
	FacilityHospital         FacilityType = "HOSPITAL"
	FacilityFireStation      FacilityType = "FIRE_STATION"
	FacilityPoliceStation    FacilityType = "POLICE_STATION"
)

func (t FacilityType) IsValid() bool {
	switch t {
	case FacilityEvacuationCenter, FacilityHospital, FacilityFireStation, FacilityPoliceStation:
		return true
	default:
		return false
	}
}

// Facility is an administrator-managed emergency facility marker.
type Facility struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Type      FacilityType `json:"type" db:"type"`
	Latitude  float64      `json:"latitude" db:"latitude"`
	Longitude float64      `json:"longitude" db:"longitude"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

type CreateFacilityInput struct {
	Name      string       `json:"name" validate:"required,min=1,max=255"`
	Type      FacilityType `json:"type" validate:"required"`
	Latitude  string       `json:"latitude" validate:"required"`
	Longitude string       `json:"longitude" validate:"required"`
}

type UpdateFacilityInput struct {
	Name *string       `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Type *FacilityType `json:"type,omitempty"`
}
