// Package admins stores the admin console accounts. Credentials here take
// precedence over the ADMIN_USER/ADMIN_PASSWORD fallback from the environment.
package admins

import (
	"context"
	"database/sql"
	"time"

	"studiosite-backend/internal/db"
)

type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	GetByUsername(ctx context.Context, username string) (AdminUser, error)
	Create(ctx context.Context, username, passwordHash string, createdAt time.Time) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type SQLRepository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) *SQLRepository {
	return &SQLRepository{db: database}
}

func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (AdminUser, error) {
	var user AdminUser
	var createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admin_users WHERE username = ?`,
		username).Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt)
	if err != nil {
		return AdminUser{}, err
	}
	user.CreatedAt = db.ParseTime(createdAt)
	return user, nil
}

func (r *SQLRepository) Create(ctx context.Context, username, passwordHash string, createdAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO admin_users (username, password_hash, created_at) VALUES (?, ?, ?)`,
		username, passwordHash, db.FormatTime(createdAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admin_users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	return err
}
