package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"airtracker/src/types"

	"gorm.io/gorm"
)

const MaxSeatLetters = 10

// SeatLetters is the ordered set of seat letters configured on an airplane,
// stored comma-joined in a single varchar column.
type SeatLetters []string

func (s SeatLetters) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

func (s *SeatLetters) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	case nil:
		*s = nil
		return nil
	default:
		return errors.New("type assertion to string failed")
	}
	if raw == "" {
		*s = nil
		return nil
	}
	*s = strings.Split(raw, ",")
	return nil
}

func (s SeatLetters) Contains(letter string) bool {
	for _, l := range s {
		if l == letter {
			return true
		}
	}
	return false
}

type AirplaneType struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`

	types.Timestamps
}

type Airplane struct {
	ID             uint        `gorm:"primarykey" json:"id"`
	Name           string      `json:"name"`
	Rows           int         `json:"rows"`
	SeatsInRow     int         `json:"seats_in_row"`
	SeatLetters    SeatLetters `gorm:"type:varchar(255)" json:"seat_letters"`
	ImageKey       *string     `json:"image,omitempty"`
	AirplaneTypeID uint        `json:"airplane_type"`

	AirplaneType AirplaneType `json:"-"`
	Facilities   []*Facility  `gorm:"many2many:airplane_facilities;" json:"facilities,omitempty"`

	types.Timestamps
}

func (a *Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

func (a *Airplane) Validate() error {
	if len(a.SeatLetters) > MaxSeatLetters {
		return &ValidationError{
			Field:   "seat_letters",
			Message: fmt.Sprintf("at most %d seat letters may be selected", MaxSeatLetters),
		}
	}
	seen := map[string]bool{}
	for _, letter := range a.SeatLetters {
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
			return &ValidationError{
				Field:   "seat_letters",
				Message: fmt.Sprintf("%q is not a letter between A and Z", letter),
			}
		}
		if seen[letter] {
			return &ValidationError{
				Field:   "seat_letters",
				Message: fmt.Sprintf("seat letter %q selected twice", letter),
			}
		}
		seen[letter] = true
	}
	if len(a.SeatLetters) != a.SeatsInRow {
		return &ValidationError{
			Field:   "seat_letters",
			Message: "number of selected seat letters must match seats in a row",
		}
	}
	return nil
}

func (a *Airplane) BeforeSave(tx *gorm.DB) error {
	return a.Validate()
}
