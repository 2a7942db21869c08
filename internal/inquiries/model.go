package inquiries

import "time"

// Inquiry status lifecycle. Every inquiry starts as StatusNew; admins may move
// it to any of the four states in any order, including back to new.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusArchived   = "archived"
)

type Inquiry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRequest is the public intake form. A status field is accepted so
// clients resending stored rows do not fail strict decoding, but its value is
// ignored: new inquiries always start as "new".
type CreateRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Company *string `json:"company"`
	Service string  `json:"service" validate:"required"`
	Message string  `json:"message" validate:"required"`
	Status  string  `json:"status"`
}

type UpdateRequest struct {
	Status string  `json:"status" validate:"required,oneof=new in_progress completed archived"`
	Notes  *string `json:"notes"`
}
