package model

import (
	"strconv"
	"strings"
)

// Day is a day of the week. Monday is the zero value.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayType classifies a Day.
type DayType string

const (
	Weekday DayType = "Weekday"
	Weekend DayType = "Weekend"
)

var dayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Days lists every Day in order.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Type returns Weekend for Saturday and Sunday, Weekday otherwise.
func (d Day) Type() DayType {
	if d == Saturday || d == Sunday {
		return Weekend
	}
	return Weekday
}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return "Day(" + strconv.Itoa(int(d)) + ")"
	}
	return dayNames[d]
}

// ParseDay resolves a case-insensitive day name.
func ParseDay(name string) (Day, error) {
	for i, n := range dayNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Day(i), nil
		}
	}
	return 0, ErrUnknownDay
}
