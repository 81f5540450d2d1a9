package model

// Catalogue is the set of products and rated items served by the catalogue
// repositories.
type Catalogue struct {
	Products []Product   `yaml:"products"`
	Items    []RatedItem `yaml:"items"`
}

// DefaultCatalogue returns the built-in sample data.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		Products: []Product{
			{ID: "P001", Name: "Pen", Price: 10, Category: "Stationery"},
			{ID: "P002", Name: "Notebook", Price: 25, Category: "Stationery"},
			{ID: "P003", Name: "Bag", Price: 50, Category: "Accessories"},
		},
		Items: []RatedItem{
			{Title: "Book A", Rating: 4.5},
			{Title: "Book B", Rating: 3.2},
			{Title: "Book C", Rating: 5.0},
		},
	}
}
