package model

import "fmt"

// Vehicle is a make and a model year. The make is fixed at construction.
type Vehicle struct {
	make string
	Year int
}

// NewVehicle creates a vehicle.
func NewVehicle(maker string, year int) Vehicle {
	return Vehicle{make: maker, Year: year}
}

// Info describes the vehicle's make and year.
func (v Vehicle) Info() string {
	return fmt.Sprintf("Make: %s, Year: %d", v.make, v.Year)
}

// Car is a Vehicle with a model name.
type Car struct {
	Vehicle
	model string
}

// NewCar creates a car. The embedded Vehicle is built before the model is set.
func NewCar(maker string, year int, model string) Car {
	c := Car{Vehicle: NewVehicle(maker, year)}
	c.model = model
	return c
}

// Model describes the car's model.
func (c Car) Model() string {
	return fmt.Sprintf("Model: %s", c.model)
}
