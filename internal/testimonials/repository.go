package testimonials

import (
	"context"
	"database/sql"

	"studiosite-backend/internal/db"
)

type Repository interface {
	Insert(ctx context.Context, t Testimonial) (int64, error)
	Update(ctx context.Context, id int64, t Testimonial) error
	Delete(ctx context.Context, id int64) error
	ListFeatured(ctx context.Context) ([]Testimonial, error)
	ListAll(ctx context.Context) ([]Testimonial, error)
}

type SQLRepository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) *SQLRepository {
	return &SQLRepository{db: database}
}

const columns = `id, client_name, client_title, client_company, client_image,
	testimonial, rating, project_type, is_featured, display_order, created_at, updated_at`

func (r *SQLRepository) Insert(ctx context.Context, t Testimonial) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO testimonials (client_name, client_title, client_company,
			client_image, testimonial, rating, project_type, is_featured,
			display_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ClientName, db.NullString(t.ClientTitle), db.NullString(t.ClientCompany),
		db.NullString(t.ClientImage), t.Testimonial, t.Rating,
		db.NullString(t.ProjectType), boolToInt(t.IsFeatured), t.DisplayOrder,
		db.FormatTime(t.CreatedAt), db.FormatTime(t.UpdatedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLRepository) Update(ctx context.Context, id int64, t Testimonial) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE testimonials SET client_name = ?, client_title = ?,
			client_company = ?, client_image = ?, testimonial = ?, rating = ?,
			project_type = ?, is_featured = ?, display_order = ?, updated_at = ?
		WHERE id = ?`,
		t.ClientName, db.NullString(t.ClientTitle), db.NullString(t.ClientCompany),
		db.NullString(t.ClientImage), t.Testimonial, t.Rating,
		db.NullString(t.ProjectType), boolToInt(t.IsFeatured), t.DisplayOrder,
		db.FormatTime(t.UpdatedAt), id)
	return err
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	return err
}

func (r *SQLRepository) ListFeatured(ctx context.Context) ([]Testimonial, error) {
	return r.list(ctx,
		`SELECT `+columns+` FROM testimonials WHERE is_featured = 1
		ORDER BY display_order ASC, id ASC`)
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]Testimonial, error) {
	return r.list(ctx,
		`SELECT `+columns+` FROM testimonials
		ORDER BY display_order ASC, created_at DESC, id DESC`)
}

func (r *SQLRepository) list(ctx context.Context, query string) ([]Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Testimonial, 0)
	for rows.Next() {
		var t Testimonial
		var title, company, image, projectType sql.NullString
		var featured int
		var createdAt, updatedAt string
		if err := rows.Scan(&t.ID, &t.ClientName, &title, &company, &image,
			&t.Testimonial, &t.Rating, &projectType, &featured, &t.DisplayOrder,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}
		t.ClientTitle = db.StringPtr(title)
		t.ClientCompany = db.StringPtr(company)
		t.ClientImage = db.StringPtr(image)
		t.ProjectType = db.StringPtr(projectType)
		t.IsFeatured = featured != 0
		t.CreatedAt = db.ParseTime(createdAt)
		t.UpdatedAt = db.ParseTime(updatedAt)
		items = append(items, t)
	}
	return items, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
