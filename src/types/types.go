package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type Role string

const (
	ROLE_ADMIN Role = "admin"
	ROLE_USER  Role = "user"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateCrewRequestBody struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Position  string `json:"position" binding:"required"`
}

type CreateCountryRequestBody struct {
	Name string `json:"name" binding:"required"`
}

type CreateCityRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Country uint   `json:"country" binding:"required"`
}

type CreateFacilityRequestBody struct {
	Name string `json:"name" binding:"required"`
}

type CreateAirportRequestBody struct {
	Name           string `json:"name" binding:"required"`
	ClosestBigCity uint   `json:"closest_big_city" binding:"required"`
	Facilities     []uint `json:"facilities,omitempty"`
}

type CreateRouteRequestBody struct {
	Source      uint `json:"source" binding:"required"`
	Destination uint `json:"destination" binding:"required,nefield=Source"`
	Distance    int  `json:"distance" binding:"required,gt=0"`
}

type CreateAirplaneTypeRequestBody struct {
	Name string `json:"name" binding:"required"`
}

type CreateAirplaneRequestBody struct {
	Name         string   `json:"name" binding:"required"`
	Rows         int      `json:"rows" binding:"required,gt=0"`
	SeatsInRow   int      `json:"seats_in_row" binding:"required,gt=0"`
	SeatLetters  []string `json:"seat_letters" binding:"required,min=1,max=10,dive,len=1"`
	AirplaneType uint     `json:"airplane_type" binding:"required"`
	Facilities   []uint   `json:"facilities,omitempty"`
}

type CreateFlightRequestBody struct {
	Route         uint      `json:"route" binding:"required"`
	Airplane      uint      `json:"airplane" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required,gtfield=DepartureTime"`
	Terminal      string    `json:"terminal" binding:"required,max=10"`
	Gate          int       `json:"gate" binding:"required"`
	Crews         []uint    `json:"crews,omitempty"`
}

type CreateTicketRequestBody struct {
	PassengerFirstName string `json:"passenger_first_name" binding:"required"`
	PassengerLastName  string `json:"passenger_last_name" binding:"required"`
	Row                int    `json:"row" binding:"required,gt=0"`
	SeatLetter         string `json:"seat_letter" binding:"required,len=1,uppercase"`
	Flight             uint   `json:"flight" binding:"required"`
}

type CreateOrderTicketRequestBody struct {
	CreateTicketRequestBody
	Order uint `json:"order" binding:"required"`
}

type CreateOrderRequestBody struct {
	Tickets []CreateTicketRequestBody `json:"tickets" binding:"required,min=1,dive"`
}
