package inquiries

import (
	"context"
	"database/sql"

	"studiosite-backend/internal/db"
)

type Repository interface {
	Insert(ctx context.Context, inquiry Inquiry) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string, notes *string, updatedAt string) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Inquiry, error)
}

type SQLRepository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) *SQLRepository {
	return &SQLRepository{db: database}
}

func (r *SQLRepository) Insert(ctx context.Context, inquiry Inquiry) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO inquiries (name, email, company, service, message, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inquiry.Name, inquiry.Email, db.NullString(inquiry.Company),
		inquiry.Service, inquiry.Message, inquiry.Status,
		db.FormatTime(inquiry.CreatedAt), db.FormatTime(inquiry.UpdatedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLRepository) UpdateStatus(ctx context.Context, id int64, status string, notes *string, updatedAt string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE inquiries SET status = ?, notes = ?, updated_at = ? WHERE id = ?`,
		status, db.NullString(notes), updatedAt, id)
	return err
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = ?`, id)
	return err
}

func (r *SQLRepository) ListAll(ctx context.Context) ([]Inquiry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, company, service, message, status, notes, created_at, updated_at
		FROM inquiries ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Inquiry, 0)
	for rows.Next() {
		var inquiry Inquiry
		var company, notes sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &company,
			&inquiry.Service, &inquiry.Message, &inquiry.Status, &notes,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}
		inquiry.Company = db.StringPtr(company)
		inquiry.Notes = db.StringPtr(notes)
		inquiry.CreatedAt = db.ParseTime(createdAt)
		inquiry.UpdatedAt = db.ParseTime(updatedAt)
		items = append(items, inquiry)
	}
	return items, rows.Err()
}
