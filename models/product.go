package models

// Product is one catalog entry. Price is in whole currency units.
type Product struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Price       int    `json:"price" bson:"price"`
	Category    string `json:"category" bson:"category"`
	Color       string `json:"color" bson:"color"`
	Image       string `json:"image" bson:"image"`
	Description string `json:"description" bson:"description"`
}
