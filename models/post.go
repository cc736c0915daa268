package models

import "time"

// Post is a blog entry managed from the admin dashboard.
type Post struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	IsPublished bool      `bson:"is_published" json:"is_published"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
