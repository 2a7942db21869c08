package testimonials

import "time"

type Testimonial struct {
	ID            int64     `json:"id"`
	ClientName    string    `json:"client_name"`
	ClientTitle   *string   `json:"client_title"`
	ClientCompany *string   `json:"client_company"`
	ClientImage   *string   `json:"client_image"`
	Testimonial   string    `json:"testimonial"`
	Rating        int       `json:"rating"`
	ProjectType   *string   `json:"project_type"`
	IsFeatured    bool      `json:"is_featured"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UpsertRequest struct {
	ClientName    string  `json:"client_name" validate:"required"`
	ClientTitle   *string `json:"client_title"`
	ClientCompany *string `json:"client_company"`
	ClientImage   *string `json:"client_image" validate:"omitempty,url"`
	Testimonial   string  `json:"testimonial" validate:"required"`
	Rating        *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	ProjectType   *string `json:"project_type"`
	IsFeatured    bool    `json:"is_featured"`
	DisplayOrder  *int    `json:"display_order" validate:"omitempty,gte=0"`
}
