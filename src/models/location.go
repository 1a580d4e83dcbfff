package models

import "airtracker/src/types"

type Country struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`

	Cities []City `json:"cities,omitempty"`

	types.Timestamps
}

type City struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `json:"name"`
	CountryID uint   `json:"country"`

	Country Country `json:"-"`

	types.Timestamps
}
