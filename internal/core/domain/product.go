package domain

import "time"

// Product is a catalog item. Listing is public; mutation is admin-only.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
