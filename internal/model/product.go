package model

import "time"

// Product represents an item in the catalogue. Comparisons between products
// use Price only.
type Product struct {
	ID        string    `json:"id,omitempty" yaml:"id" db:"id"`
	Name      string    `json:"name" yaml:"name" db:"name"`
	Price     float64   `json:"price" yaml:"price" db:"price"`
	Category  string    `json:"category,omitempty" yaml:"category" db:"category"`
	CreatedAt time.Time `json:"createdAt,omitzero" yaml:"-" db:"created_at"`
}

// RatedItem is a titled entry carrying a rating. No range is enforced on
// Rating.
type RatedItem struct {
	Title  string  `json:"title" yaml:"title" db:"title"`
	Rating float64 `json:"rating" yaml:"rating" db:"rating"`
}
