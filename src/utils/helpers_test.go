package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("1,2,3")
	assert.Nil(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)

	ids, err = ParseIDList("4")
	assert.Nil(t, err)
	assert.Equal(t, []uint{4}, ids)

	ids, err = ParseIDList(" 1, 2 ")
	assert.Nil(t, err)
	assert.Equal(t, []uint{1, 2}, ids)

	_, err = ParseIDList("1,x")
	assert.NotNil(t, err)

	_, err = ParseIDList("")
	assert.NotNil(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	assert.Nil(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 1, d.Day())

	_, err = ParseDate("01-09-2026")
	assert.NotNil(t, err)

	_, err = ParseDate("not-a-date")
	assert.NotNil(t, err)
}

func TestParseSeat(t *testing.T) {
	row, letter, err := ParseSeat("12A")
	assert.Nil(t, err)
	assert.Equal(t, 12, row)
	assert.Equal(t, "A", letter)

	row, letter, err = ParseSeat("1F")
	assert.Nil(t, err)
	assert.Equal(t, 1, row)
	assert.Equal(t, "F", letter)

	_, _, err = ParseSeat("A")
	assert.NotNil(t, err)

	_, _, err = ParseSeat("12")
	assert.NotNil(t, err)

	_, _, err = ParseSeat("0A")
	assert.NotNil(t, err)

	_, _, err = ParseSeat("12a")
	assert.NotNil(t, err)
}
