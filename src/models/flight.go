package models

import (
	"fmt"
	"time"

	"airtracker/src/config"
	"airtracker/src/types"
)

type Flight struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	RouteID       uint      `json:"route"`
	AirplaneID    uint      `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Terminal      string    `gorm:"size:10" json:"terminal"`
	Gate          int       `json:"gate"`

	Route    Route    `json:"-"`
	Airplane Airplane `json:"-"`
	Crews    []*Crew  `gorm:"many2many:flight_crews;" json:"crews,omitempty"`

	types.Timestamps
}

// Describe expects Route.Source and Route.Destination to be preloaded.
func (f *Flight) Describe() string {
	return fmt.Sprintf(
		"%s: %s -> %s",
		f.Route.ShortWay(),
		f.DepartureTime.Format(config.TIME_PARSE_FORMAT),
		f.ArrivalTime.Format(config.TIME_PARSE_FORMAT),
	)
}
