package models

import (
	"fmt"

	"airtracker/src/types"
)

type Crew struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position,omitempty"`

	Flights []*Flight `gorm:"many2many:flight_crews;" json:"flights,omitempty"`

	types.Timestamps
}

func (c *Crew) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}
