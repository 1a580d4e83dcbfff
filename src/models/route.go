package models

import (
	"fmt"

	"airtracker/src/types"
)

// Route is a directed source -> destination pair; the pair is unique.
type Route struct {
	ID            uint `gorm:"primarykey" json:"id"`
	SourceID      uint `gorm:"uniqueIndex:idx_route_pair" json:"source"`
	DestinationID uint `gorm:"uniqueIndex:idx_route_pair" json:"destination"`
	Distance      int  `json:"distance"`

	Source      Airport `gorm:"foreignKey:SourceID" json:"-"`
	Destination Airport `gorm:"foreignKey:DestinationID" json:"-"`

	types.Timestamps
}

// FullWay expects Source and Destination to be preloaded.
func (r *Route) FullWay() string {
	return fmt.Sprintf("From %s to %s", r.Source.Name, r.Destination.Name)
}

func (r *Route) ShortWay() string {
	return fmt.Sprintf("%s -> %s", r.Source.Name, r.Destination.Name)
}
