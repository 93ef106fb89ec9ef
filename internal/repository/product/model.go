package repository

import "time"

type ProductEntity struct {
	ID            string    `bson:"_id"`
	ProductCode   string    `bson:"product_code"`
	Name          string    `bson:"name"`
	Description   string    `bson:"description"`
	Image         string    `bson:"image,omitempty"`
	PriceUSD      *float64  `bson:"price_usd"`
	PriceARS      *float64  `bson:"price_ars"`
	FixedInARS    bool      `bson:"fixed_in_ars"`
	Categories    []string  `bson:"categories"`
	Subcategories []string  `bson:"subcategories"`
	Active        bool      `bson:"active"`
	Views         int64     `bson:"views"`
	SoldCount     int64     `bson:"sold_count"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}
