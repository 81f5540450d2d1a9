package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCar(t *testing.T) {
	car := NewCar("Toyota", 2020, "Corolla")

	assert.Equal(t, "Make: Toyota, Year: 2020", car.Info())
	assert.Equal(t, "Model: Corolla", car.Model())

	// Year stays mutable through the embedded vehicle.
	car.Year = 2021
	assert.Equal(t, "Make: Toyota, Year: 2021", car.Info())
}

func TestVehicle_Info(t *testing.T) {
	v := NewVehicle("Honda", 1999)
	assert.Equal(t, "Make: Honda, Year: 1999", v.Info())
}

func TestProcessValue(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected float64
	}{
		{name: "Text returns length", value: Text("hello"), expected: 5},
		{name: "Empty text", value: Text(""), expected: 0},
		{name: "Number is doubled", value: Number(10), expected: 20},
		{name: "Negative number", value: Number(-2.5), expected: -5},
		{name: "Zero", value: Number(0), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProcessValue(tt.value))
		})
	}
}

func TestProcessValue_Nil(t *testing.T) {
	assert.PanicsWithValue(t, "model: ProcessValue called with a nil Value", func() {
		ProcessValue(nil)
	})
}

func TestDay_Type(t *testing.T) {
	assert.Equal(t, Weekday, Monday.Type())
	assert.Equal(t, Weekend, Sunday.Type())

	for _, d := range Days() {
		isWeekend := d == Saturday || d == Sunday
		assert.Equal(t, isWeekend, d.Type() == Weekend, "day %s", d)
	}
}

func TestDay_String(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Day(9)", Day(9).String())
	assert.Equal(t, "Day(-1)", Day(-1).String())
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Day
		expectError bool
	}{
		{name: "Exact name", input: "Saturday", expected: Saturday},
		{name: "Lower case", input: "tuesday", expected: Tuesday},
		{name: "Surrounding spaces", input: "  Friday ", expected: Friday},
		{name: "Unknown", input: "Funday", expectError: true},
		{name: "Empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseDay(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, ErrUnknownDay, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, day)
			}
		})
	}
}

func TestDomainError(t *testing.T) {
	assert.Equal(t, "Negative number not allowed", ErrNegativeNumber.Error())
	assert.Equal(t, ErrCodeNegativeNumber, ErrNegativeNumber.Code)
}
