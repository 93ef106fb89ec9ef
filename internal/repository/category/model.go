package repository

import "time"

type CategoryEntity struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Slug      string    `bson:"slug"`
	Parent    *string   `bson:"parent"`
	Ancestors []string  `bson:"ancestors"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
