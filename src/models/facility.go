package models

import "airtracker/src/types"

// Facility is an amenity tag shared by airports and airplanes.
type Facility struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`

	Airports  []*Airport  `gorm:"many2many:airport_facilities;" json:"airports,omitempty"`
	Airplanes []*Airplane `gorm:"many2many:airplane_facilities;" json:"airplanes,omitempty"`

	types.Timestamps
}
