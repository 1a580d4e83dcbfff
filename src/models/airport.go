package models

import "airtracker/src/types"

type Airport struct {
	ID               uint    `gorm:"primarykey" json:"id"`
	Name             string  `json:"name"`
	ImageKey         *string `json:"image,omitempty"`
	ClosestBigCityID uint    `json:"closest_big_city"`

	ClosestBigCity City        `json:"-"`
	Facilities     []*Facility `gorm:"many2many:airport_facilities;" json:"facilities,omitempty"`

	types.Timestamps
}
