package portfolio

import "time"

type Item struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Category     string    `json:"category"`
	Description  *string   `json:"description"`
	Problem      *string   `json:"problem"`
	Solution     *string   `json:"solution"`
	Tools        *string   `json:"tools"`
	Image        *string   `json:"image"`
	DemoURL      *string   `json:"demo_url"`
	GithubURL    *string   `json:"github_url"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UpsertRequest struct {
	Title        string  `json:"title" validate:"required"`
	Slug         string  `json:"slug" validate:"required,slug"`
	Category     string  `json:"category" validate:"required"`
	Description  *string `json:"description"`
	Problem      *string `json:"problem"`
	Solution     *string `json:"solution"`
	Tools        *string `json:"tools"`
	Image        *string `json:"image" validate:"omitempty,url"`
	DemoURL      *string `json:"demo_url" validate:"omitempty,url"`
	GithubURL    *string `json:"github_url" validate:"omitempty,url"`
	IsFeatured   bool    `json:"is_featured"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}
