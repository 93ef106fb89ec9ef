package repository

import "time"

type BannerEntity struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Subtitle  string    `bson:"subtitle"`
	Image     string    `bson:"image"`
	LinkURL   string    `bson:"link_url"`
	Type      string    `bson:"type"`
	Order     int       `bson:"order"`
	Active    bool      `bson:"active"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
