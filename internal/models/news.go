package models

import "time"

// NewsArticle is a published plan news item.
type NewsArticle struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Summary         string     `json:"summary,omitempty"`
	Category        string     `json:"category"`
	Featured        bool       `json:"featured"`
	Published       bool       `json:"published"`
	Slug            string     `json:"slug"`
	Author          string     `json:"author"`
	PublishedAt     time.Time  `json:"published_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	ImageURL        string     `json:"image_url,omitempty"`
	ReadTimeMinutes int        `json:"read_time_minutes"`
}
