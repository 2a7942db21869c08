package blog

import "time"

type Post struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	Category      *string    `json:"category"`
	Tags          *string    `json:"tags"`
	FeaturedImage *string    `json:"featured_image"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Summary is the public listing projection; it omits content and the
// draft-management fields.
type Summary struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Author        string     `json:"author"`
	Category      *string    `json:"category"`
	Tags          *string    `json:"tags"`
	FeaturedImage *string    `json:"featured_image"`
	PublishedAt   *time.Time `json:"published_at"`
}

type UpsertRequest struct {
	Title         string     `json:"title" validate:"required"`
	Slug          string     `json:"slug" validate:"required,slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       string     `json:"content" validate:"required"`
	Author        string     `json:"author" validate:"required"`
	Category      *string    `json:"category"`
	Tags          *string    `json:"tags"`
	FeaturedImage *string    `json:"featured_image" validate:"omitempty,url"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at"`
}
