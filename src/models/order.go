package models

import (
	"errors"
	"fmt"

	"airtracker/src/types"

	"gorm.io/gorm"
)

type Order struct {
	ID     uint `gorm:"primarykey" json:"id"`
	UserID uint `json:"user_id,omitempty"`

	User    User     `json:"-"`
	Tickets []Ticket `json:"tickets,omitempty"`

	types.Timestamps
}

// Ticket is a single passenger's seat on one flight. A seat can only be
// taken once per flight.
type Ticket struct {
	ID                 uint   `gorm:"primarykey" json:"id"`
	PassengerFirstName string `json:"passenger_first_name"`
	PassengerLastName  string `json:"passenger_last_name"`
	Row                int    `gorm:"uniqueIndex:idx_flight_seat" json:"row"`
	SeatLetter         string `gorm:"size:1;uniqueIndex:idx_flight_seat" json:"seat_letter"`
	FlightID           uint   `gorm:"uniqueIndex:idx_flight_seat" json:"flight"`
	OrderID            uint   `json:"order,omitempty"`

	Flight Flight `json:"-"`
	Order  Order  `json:"-"`

	types.Timestamps
}

func (t *Ticket) Seat() string {
	return fmt.Sprintf("%d%s", t.Row, t.SeatLetter)
}

func (t *Ticket) PassengerName() string {
	return fmt.Sprintf("%s %s", t.PassengerFirstName, t.PassengerLastName)
}

// ValidateAgainst checks the seat against the flight's airplane layout.
func (t *Ticket) ValidateAgainst(airplane *Airplane) error {
	if !airplane.SeatLetters.Contains(t.SeatLetter) {
		return &ValidationError{
			Field:   "seat_letter",
			Message: fmt.Sprintf("%s does not have seat letter %q", airplane.Name, t.SeatLetter),
		}
	}
	if t.Row < 1 || t.Row > airplane.Rows {
		return &ValidationError{
			Field:   "row",
			Message: fmt.Sprintf("row must be between 1 and %d", airplane.Rows),
		}
	}
	return nil
}

func (t *Ticket) BeforeSave(tx *gorm.DB) error {
	var flight Flight
	if err := tx.
		Model(&Flight{}).
		Preload("Airplane").
		First(&flight, t.FlightID).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Field: "flight", Message: fmt.Sprintf("flight %d does not exist", t.FlightID)}
		}
		return err
	}
	return t.ValidateAgainst(&flight.Airplane)
}
